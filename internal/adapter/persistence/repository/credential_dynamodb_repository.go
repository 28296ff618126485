package repository

import (
	"context"
	"errors"
	"time"

	"sklad/internal/domain/entities"
	"sklad/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultCredentialsTableName = "sklad_sessions"

// DynamoAPI is the subset of the DynamoDB client the repository needs.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, opts ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type credentialItem struct {
	Profile     string `dynamodbav:"profile"`
	AccessToken string `dynamodbav:"access_token"`
	TokenType   string `dynamodbav:"token_type"`
	Username    string `dynamodbav:"username"`
	ExpiresAt   string `dynamodbav:"expires_at"`
	TTL         int64  `dynamodbav:"ttl,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CredentialDynamoRepository shares one operator session between several
// terminals (e.g. warehouse kiosks) through a DynamoDB table.
//
// Table requirements:
//   - PK: profile (string)
//   - TTL attribute: ttl (epoch seconds), so expired sessions disappear
//     without a sweeper.
type CredentialDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	profile   string
	now       func() time.Time
}

var _ interfaces.ICredentialStore = (*CredentialDynamoRepository)(nil)

func NewCredentialDynamoRepository(ddb DynamoAPI, tableName, profile string) *CredentialDynamoRepository {
	if tableName == "" {
		tableName = DefaultCredentialsTableName
	}
	if profile == "" {
		profile = "default"
	}
	return &CredentialDynamoRepository{ddb: ddb, tableName: tableName, profile: profile, now: time.Now}
}

func (r *CredentialDynamoRepository) Load(ctx context.Context) (entities.Credential, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Credential{}, err
	}
	if len(out.Item) == 0 {
		return entities.Credential{}, nil
	}

	var it credentialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Credential{}, err
	}
	c := fromCredentialItem(it)
	// TTL deletion is lazy on DynamoDB's side.
	if !c.Valid(r.now()) {
		return entities.Credential{}, nil
	}
	return c, nil
}

func (r *CredentialDynamoRepository) Save(ctx context.Context, c entities.Credential) error {
	it := toCredentialItem(r.profile, c, r.now())
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// Touch records that the session was used, failing silently when another
// terminal already cleared it.
func (r *CredentialDynamoRepository) Touch(ctx context.Context) error {
	now := formatTime(r.now())
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 r.key(),
		ConditionExpression: aws.String("attribute_exists(#profile)"),
		UpdateExpression:    aws.String("SET #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#updated_at": "updated_at"},
			map[string]string{"#profile": "profile"},
		),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *CredentialDynamoRepository) Clear(ctx context.Context) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(),
	})
	return err
}

func (r *CredentialDynamoRepository) key() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"profile": &types.AttributeValueMemberS{Value: r.profile},
	}
}

func toCredentialItem(profile string, c entities.Credential, now time.Time) credentialItem {
	it := credentialItem{
		Profile:     profile,
		AccessToken: c.AccessToken,
		TokenType:   c.TokenType,
		Username:    c.Username,
		ExpiresAt:   formatTime(c.ExpiresAt),
		UpdatedAt:   formatTime(now),
	}
	if !c.ExpiresAt.IsZero() {
		it.TTL = c.ExpiresAt.Unix()
	}
	return it
}

func fromCredentialItem(it credentialItem) entities.Credential {
	return entities.Credential{
		AccessToken: it.AccessToken,
		TokenType:   it.TokenType,
		Username:    it.Username,
		ExpiresAt:   parseTime(it.ExpiresAt),
	}
}
