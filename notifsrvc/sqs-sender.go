package notifsrvc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/opsfront/intake-backend/intake"
)

type sqsApi interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SqsSender enqueues the formatted notification on an SQS queue that a
// downstream delivery worker drains.
type SqsSender struct {
	sqsClient sqsApi
	queueUrl  string
	recipient string
}

// sqsNotifMsg is the wire shape placed on the queue.
type sqsNotifMsg struct {
	Recipient    string `json:"recipient"`
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	SubmissionID string `json:"submission_id"`
}

func NewSqsSender(region string, queueUrl string, recipient string) (*SqsSender, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &SqsSender{
		sqsClient: sqs.NewFromConfig(cfg),
		queueUrl:  queueUrl,
		recipient: recipient,
	}, nil
}

func (s *SqsSender) Send(ctx context.Context, subm intake.Submission) error {
	msg := sqsNotifMsg{
		Recipient:    s.recipient,
		Subject:      Subject(subm),
		Body:         Body(subm),
		SubmissionID: subm.ID,
	}
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification message: %w", err)
	}

	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueUrl),
		MessageBody: aws.String(string(jsonMsg)),
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}
