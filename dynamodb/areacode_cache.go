package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AreaCodeCache implements areacode.Cache on a DynamoDB table keyed by NPA.
// The NPA→state mapping is static, so items carry no TTL.
type AreaCodeCache struct {
	client *dynamodb.Client
	table  string
}

type areaCodeItem struct {
	NPA   string `dynamodbav:"npa"`
	State string `dynamodbav:"state"`
}

func NewAreaCodeCache(client *dynamodb.Client, table string) *AreaCodeCache {
	return &AreaCodeCache{
		client: client,
		table:  table,
	}
}

func (c *AreaCodeCache) GetState(ctx context.Context, npa string) (string, bool, error) {
	if err := validateTable(c.table); err != nil {
		return "", false, err
	}

	out, err := c.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &c.table,
		Key: map[string]types.AttributeValue{
			"npa": &types.AttributeValueMemberS{Value: npa},
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("dynamodb: get area code: %w", err)
	}
	if out.Item == nil {
		return "", false, nil
	}

	var item areaCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return "", false, fmt.Errorf("dynamodb: unmarshal area code: %w", err)
	}

	return item.State, true, nil
}

func (c *AreaCodeCache) PutState(ctx context.Context, npa, state string) error {
	if err := validateTable(c.table); err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(areaCodeItem{NPA: npa, State: state})
	if err != nil {
		return fmt.Errorf("dynamodb: marshal area code: %w", err)
	}

	_, err = c.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &c.table,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb: put area code: %w", err)
	}

	return nil
}
