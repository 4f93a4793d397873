// Package dynamo implements the analysis store client on top of DynamoDB.
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dealflowhq/dealflow/internal/contract"
	"github.com/dealflowhq/dealflow/schema"
)

// scanAPI is the subset of the DynamoDB client used by the store client.
// Tests inject a fake to exercise pagination without a live table.
type scanAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Client reads scored repository records from a DynamoDB analysis table.
// It is compatible with any DynamoDB-compatible store (AWS, LocalStack,
// DynamoDB Local) via the endpoint override.
type Client struct {
	api   scanAPI
	table string
}

var _ contract.StoreClient = (*Client)(nil) // Compile-time check

// NewClient creates a store client from the validated configuration.
// Credentials and endpoint are explicit so the dependency stays injectable;
// when no static credentials are set, the default AWS credential chain is
// used.
func NewClient(ctx context.Context, cfg *contract.Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	api := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Client{api: api, table: cfg.Table}, nil
}

// NewClientWithAPI wires a pre-built scan API. Used by tests.
func NewClientWithAPI(api scanAPI, table string) *Client {
	return &Client{api: api, table: table}
}

// Scan performs a full scan of the analysis table, following
// LastEvaluatedKey continuation until the table is exhausted. Any transport
// or permission failure is returned as a *schema.StoreError; partial pages
// are discarded.
func (c *Client) Scan(ctx context.Context) ([]schema.RawRecord, error) {
	var records []schema.RawRecord
	var startKey map[string]types.AttributeValue

	for {
		out, err := c.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(c.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, &schema.StoreError{Table: c.table, Err: err}
		}

		page := make([]map[string]any, 0, len(out.Items))
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, &schema.StoreError{Table: c.table, Err: fmt.Errorf("decode items: %w", err)}
		}
		for _, item := range page {
			records = append(records, schema.RawRecord(item))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return records, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
