package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// LoadSSMParameters reads every parameter below prefix from AWS SSM Parameter Store.
// The last path segment becomes the key, so /festival/prod/ADMIN_JWT_SECRET maps to ADMIN_JWT_SECRET.
func LoadSSMParameters(ctx context.Context, prefix string) (map[string]string, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return fetchSSMParameters(ctx, ssm.NewFromConfig(awsCfg), prefix)
}

func fetchSSMParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, prefix string) (map[string]string, error) {
	params := make(map[string]string)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("get parameters by path %s: %w", prefix, err)
		}
		for _, p := range page.Parameters {
			name := strings.TrimSpace(aws.ToString(p.Name))
			if name == "" {
				continue
			}
			params[path.Base(name)] = aws.ToString(p.Value)
		}
	}
	return params, nil
}

// Merge copies overrides into base for keys that base does not already set.
func Merge(base, overrides map[string]string) map[string]string {
	for key, value := range overrides {
		if _, ok := base[key]; !ok {
			base[key] = value
		}
	}
	return base
}
