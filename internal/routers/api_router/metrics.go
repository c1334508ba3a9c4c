package api_router

import (
	"expvar"
	"fmt"

	"github.com/haierkeys/lead-intention-service/pkg/workerpool"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

// RuntimeVars 导出 expvar 运行时变量，并附带邮件 Worker Pool 快照（mail_pool）
// pool 为 nil 时只输出 expvar
func RuntimeVars(pool *workerpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		first := true
		report := func(key string, value string) {
			if !first {
				fmt.Fprintf(c.Writer, ",\n")
			}
			first = false
			fmt.Fprintf(c.Writer, "%q: %s", key, value)
		}

		fmt.Fprintf(c.Writer, "{\n")
		expvar.Do(func(kv expvar.KeyValue) {
			report(kv.Key, kv.Value.String())
		})
		if pool != nil {
			if b, err := sonic.Marshal(pool.Stats()); err == nil {
				report("mail_pool", string(b))
			}
		}
		fmt.Fprintf(c.Writer, "\n}\n")
	}
}
