package service

import (
	"bytes"
	"html/template"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(
	`<h2>Olá {{.Name}}</h2><p>Muito obrigado por consultar conosco!.</p>`,
))

// renderWelcome 渲染欢迎邮件正文，姓名会被 HTML 转义
func renderWelcome(name string) (string, error) {
	if name == "" {
		name = "!"
	}
	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
