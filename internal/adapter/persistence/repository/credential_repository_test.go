package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sklad/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestCredentialFileRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	repo := NewCredentialFileRepository(path)

	t.Run("missing file is empty", func(t *testing.T) {
		c, err := repo.Load(ctx)
		if err != nil || !c.Empty() {
			t.Fatalf("expected empty credential, got %+v err=%v", c, err)
		}
	})

	t.Run("save then load", func(t *testing.T) {
		exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		if err := repo.Save(ctx, entities.Credential{AccessToken: "tok", Username: "admin", ExpiresAt: exp}); err != nil {
			t.Fatalf("save: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Fatalf("expected 0600, got %v", info.Mode().Perm())
		}
		c, err := repo.Load(ctx)
		if err != nil || c.AccessToken != "tok" || !c.ExpiresAt.Equal(exp) {
			t.Fatalf("unexpected credential %+v err=%v", c, err)
		}
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		if err := repo.Clear(ctx); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if err := repo.Clear(ctx); err != nil {
			t.Fatalf("second clear: %v", err)
		}
		c, _ := repo.Load(ctx)
		if !c.Empty() {
			t.Fatalf("expected empty after clear")
		}
	})
}

func TestCredentialMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialMemoryRepository(entities.Credential{AccessToken: "a"})
	if c, _ := repo.Load(ctx); c.AccessToken != "a" {
		t.Fatalf("expected initial credential")
	}
	_ = repo.Clear(ctx)
	if c, _ := repo.Load(ctx); !c.Empty() {
		t.Fatalf("expected cleared credential")
	}
}

type fakeDynamo struct {
	items      map[string]map[string]types.AttributeValue
	updateErr  error
	lastUpdate *dynamodb.UpdateItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	return key["profile"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.items[keyOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	return &dynamodb.UpdateItemOutput{}, f.updateErr
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestCredentialDynamoRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("save writes ttl and load round-trips", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewCredentialDynamoRepository(ddb, "", "kiosk-1")
		repo.now = func() time.Time { return now }

		exp := now.Add(time.Hour)
		if err := repo.Save(ctx, entities.Credential{AccessToken: "tok", TokenType: "bearer", ExpiresAt: exp}); err != nil {
			t.Fatalf("save: %v", err)
		}

		var it credentialItem
		if err := attributevalue.UnmarshalMap(ddb.items["kiosk-1"], &it); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if it.TTL != exp.Unix() {
			t.Fatalf("expected ttl %d, got %d", exp.Unix(), it.TTL)
		}

		c, err := repo.Load(ctx)
		if err != nil || c.AccessToken != "tok" {
			t.Fatalf("unexpected credential %+v err=%v", c, err)
		}
	})

	t.Run("expired item reads as empty", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewCredentialDynamoRepository(ddb, "sessions", "")
		repo.now = func() time.Time { return now }
		_ = repo.Save(ctx, entities.Credential{AccessToken: "old", ExpiresAt: now.Add(-time.Minute)})

		c, err := repo.Load(ctx)
		if err != nil || !c.Empty() {
			t.Fatalf("expected empty credential, got %+v err=%v", c, err)
		}
	})

	t.Run("touch ignores missing session", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.updateErr = &types.ConditionalCheckFailedException{}
		repo := NewCredentialDynamoRepository(ddb, "", "")

		if err := repo.Touch(ctx); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
		if *ddb.lastUpdate.ConditionExpression != "attribute_exists(#profile)" {
			t.Fatalf("unexpected condition %q", *ddb.lastUpdate.ConditionExpression)
		}
	})

	t.Run("clear deletes", func(t *testing.T) {
		ddb := newFakeDynamo()
		repo := NewCredentialDynamoRepository(ddb, "", "")
		_ = repo.Save(ctx, entities.Credential{AccessToken: "x"})
		if err := repo.Clear(ctx); err != nil {
			t.Fatalf("clear: %v", err)
		}
		if len(ddb.items) != 0 {
			t.Fatalf("expected no items")
		}
	})
}
