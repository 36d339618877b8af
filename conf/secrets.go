package conf

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

func getAdminKeyFromAWS(secretName string) (string, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", err
	}
	svc := secretsmanager.NewFromConfig(cfg)
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := svc.GetSecretValue(ctx, input)
	if err != nil {
		return "", err
	}
	secretValue := *result.SecretString

	// the secret is either the raw key or a JSON object {"admin_key": ...}
	var secret struct {
		AdminKey string `json:"admin_key"`
	}
	if err := json.Unmarshal([]byte(secretValue), &secret); err == nil && secret.AdminKey != "" {
		return secret.AdminKey, nil
	}
	return secretValue, nil
}
