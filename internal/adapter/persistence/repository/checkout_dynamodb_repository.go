package repository

import (
	"context"
	"errors"
	"time"

	"spayway_checkout/internal/domain/entities"
	"spayway_checkout/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultCheckoutsTableName = "checkouts"
	checkoutsInvoiceIndex     = "invoice_token-index"
)

var ErrCheckoutAlreadyExists = errors.New("checkout record already exists")

// dynamoAPI is the subset of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Amounts are stored as strings to keep the gateway's decimal precision.
type checkoutItem struct {
	ID            string `dynamodbav:"id"`
	InvoiceToken  string `dynamodbav:"invoice_token"`
	RequestID     string `dynamodbav:"request_id"`
	PaymentMethod string `dynamodbav:"payment_method"`
	Amount        string `dynamodbav:"amount"`
	ProcessingFee string `dynamodbav:"processing_fee"`
	ReceiverName  string `dynamodbav:"receiver_name,omitempty"`
	RemarkCode    string `dynamodbav:"remark_code,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	RawPayload    string `dynamodbav:"raw_payload,omitempty"`
}

// CheckoutDynamoRepository persists CheckoutRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_token-index (PK: invoice_token)
type CheckoutDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICheckoutRepository = (*CheckoutDynamoRepository)(nil)

func NewCheckoutDynamoRepository(ddb *dynamodb.Client, tableName string) *CheckoutDynamoRepository {
	return newCheckoutDynamoRepository(ddb, tableName)
}

func newCheckoutDynamoRepository(ddb dynamoAPI, tableName string) *CheckoutDynamoRepository {
	if tableName == "" {
		tableName = DefaultCheckoutsTableName
	}
	return &CheckoutDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CheckoutDynamoRepository) Create(ctx context.Context, rec entities.CheckoutRecord) (entities.CheckoutRecord, error) {
	av, err := attributevalue.MarshalMap(toCheckoutItem(rec))
	if err != nil {
		return entities.CheckoutRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return entities.CheckoutRecord{}, ErrCheckoutAlreadyExists
		}
		return entities.CheckoutRecord{}, err
	}
	return rec, nil
}

// GetByID returns a zero record when the id is unknown.
func (r *CheckoutDynamoRepository) GetByID(ctx context.Context, id string) (entities.CheckoutRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutRecord{}, nil
	}

	var it checkoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutRecord{}, err
	}
	return fromCheckoutItem(it), nil
}

func (r *CheckoutDynamoRepository) ListByInvoiceToken(ctx context.Context, invoiceToken string) ([]entities.CheckoutRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkoutsInvoiceIndex),
		KeyConditionExpression: aws.String("invoice_token = :tok"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tok": &types.AttributeValueMemberS{Value: invoiceToken},
		},
	})

	items := make([]entities.CheckoutRecord, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it checkoutItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCheckoutItem(it))
		}
	}
	return items, nil
}

func toCheckoutItem(rec entities.CheckoutRecord) checkoutItem {
	return checkoutItem{
		ID:            rec.ID,
		InvoiceToken:  rec.InvoiceToken,
		RequestID:     rec.RequestID,
		PaymentMethod: rec.PaymentMethod,
		Amount:        rec.Amount.String(),
		ProcessingFee: rec.ProcessingFee.String(),
		ReceiverName:  rec.ReceiverName,
		RemarkCode:    rec.RemarkCode,
		CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		RawPayload:    string(rec.RawPayload),
	}
}

func fromCheckoutItem(it checkoutItem) entities.CheckoutRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	rec := entities.CheckoutRecord{
		ID:            it.ID,
		InvoiceToken:  it.InvoiceToken,
		RequestID:     it.RequestID,
		PaymentMethod: it.PaymentMethod,
		Amount:        parseDecimal(it.Amount),
		ProcessingFee: parseDecimal(it.ProcessingFee),
		ReceiverName:  it.ReceiverName,
		RemarkCode:    it.RemarkCode,
		CreatedAt:     createdAt,
	}
	if it.RawPayload != "" {
		rec.RawPayload = []byte(it.RawPayload)
	}
	return rec
}
