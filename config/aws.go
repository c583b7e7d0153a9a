package config

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
)

// NewQueue opens an SQS client with the static credentials from the config.
func (c *AWSsqsConfig) NewQueue() (*sqs.SQS, error) {
	awsConf := &aws.Config{
		Region:      aws.String(c.Region),
		Credentials: credentials.NewStaticCredentials(c.ClientId, c.ClientSecret, c.ClientToken),
	}
	if c.Endpoint != "" {
		awsConf.Endpoint = aws.String(c.Endpoint)
	}

	sess, err := session.NewSession(awsConf)
	if err != nil {
		return nil, fmt.Errorf("cannot create aws session: %w", err)
	}

	if _, err := sess.Config.Credentials.Get(); err != nil {
		return nil, fmt.Errorf("cannot assign session with credentials: %w", err)
	}

	return sqs.New(sess), nil
}
