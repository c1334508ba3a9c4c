package mailer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"
)

// SESConfig Amazon SES 配置
type SESConfig struct {
	Region string `yaml:"region" default:"us-east-1"`
}

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender 通过 Amazon SES 发送
type SESSender struct {
	from   From
	client sesAPI
}

var _ Sender = (*SESSender)(nil)

// NewSESSender loads credentials from the default AWS chain.
func NewSESSender(ctx context.Context, cfg SESConfig, from From) (*SESSender, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, errors.Wrap(err, "mailer: load aws config")
	}
	return &SESSender{from: from, client: ses.NewFromConfig(awsCfg)}, nil
}

func (s *SESSender) input(msg *Message) *ses.SendEmailInput {
	charset := aws.String("UTF-8")
	return &ses.SendEmailInput{
		Source:      aws.String(s.from.Header()),
		Destination: &types.Destination{ToAddresses: []string{msg.To}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: charset},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML), Charset: charset},
			},
		},
	}
}

func (s *SESSender) Send(ctx context.Context, msg *Message) error {
	if err := validate(msg); err != nil {
		return err
	}
	if _, err := s.client.SendEmail(ctx, s.input(msg)); err != nil {
		return errors.Wrap(err, "mailer: ses send")
	}
	return nil
}
