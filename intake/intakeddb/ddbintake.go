// Package intakeddb persists intake submissions in a DynamoDB table keyed
// by submission id.
package intakeddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"

	"github.com/opsfront/intake-backend/intake"
)

// SubmRow is the stored shape of a submission.
type SubmRow struct {
	ID          string `dynamo:"id,hash"` // partition key
	SubmittedAt string `dynamo:"submitted_at_rfc3339_utc"`

	Name    string `dynamo:"name"`
	Email   string `dynamo:"email"`
	Company string `dynamo:"company"`
	Phone   string `dynamo:"phone,omitempty"`

	ProjectType  string `dynamo:"project_type"`
	Description  string `dynamo:"description"`
	Timeline     string `dynamo:"timeline"`
	Budget       string `dynamo:"budget,omitempty"`
	Requirements string `dynamo:"requirements,omitempty"`

	Status string `dynamo:"status"`
	Notes  string `dynamo:"notes,omitempty"`
}

type DdbSubmTable struct {
	ddbClient *dynamodb.Client
	tableName string
	submTable *dynamo.Table
}

func NewDdbSubmTable(ddbClient *dynamodb.Client, tableName string) *DdbSubmTable {
	ddb := &DdbSubmTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	table := db.Table(ddb.tableName)
	ddb.submTable = &table

	return ddb
}

// Put implements intakesrvc.SubmRepo. Writes are full-record overwrites,
// last-writer-wins as the store contract specifies.
func (ddb *DdbSubmTable) Put(ctx context.Context, subm intake.Submission) error {
	row := rowFromSubm(subm)
	if err := ddb.submTable.Put(&row).Run(ctx); err != nil {
		return fmt.Errorf("failed to put submission %s: %w", subm.ID, err)
	}
	return nil
}

// GetAll implements intakesrvc.SubmRepo via a table scan. The intake
// volume is a handful of records per day; a scan is the contract's
// read-all primitive, not a shortcut.
func (ddb *DdbSubmTable) GetAll(ctx context.Context) ([]intake.Submission, error) {
	var rows []SubmRow
	if err := ddb.submTable.Scan().All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to scan submissions: %w", err)
	}

	subms := make([]intake.Submission, 0, len(rows))
	for _, row := range rows {
		subm, err := row.toSubm()
		if err != nil {
			return nil, err
		}
		subms = append(subms, subm)
	}
	return subms, nil
}

func rowFromSubm(subm intake.Submission) SubmRow {
	return SubmRow{
		ID:           subm.ID,
		SubmittedAt:  subm.SubmittedAt.UTC().Format(time.RFC3339Nano),
		Name:         subm.ContactInfo.Name,
		Email:        subm.ContactInfo.Email,
		Company:      subm.ContactInfo.Company,
		Phone:        subm.ContactInfo.Phone,
		ProjectType:  subm.ProjectDetails.ProjectType,
		Description:  subm.ProjectDetails.Description,
		Timeline:     subm.ProjectDetails.Timeline,
		Budget:       subm.ProjectDetails.Budget,
		Requirements: subm.ProjectDetails.Requirements,
		Status:       string(subm.Status),
		Notes:        subm.Notes,
	}
}

func (row SubmRow) toSubm() (intake.Submission, error) {
	submittedAt, err := time.Parse(time.RFC3339Nano, row.SubmittedAt)
	if err != nil {
		return intake.Submission{}, fmt.Errorf(
			"failed to parse submitted_at of %s: %w", row.ID, err)
	}
	return intake.Submission{
		ID:          row.ID,
		SubmittedAt: submittedAt,
		ContactInfo: intake.ContactInfo{
			Name:    row.Name,
			Email:   row.Email,
			Company: row.Company,
			Phone:   row.Phone,
		},
		ProjectDetails: intake.ProjectDetails{
			ProjectType:  row.ProjectType,
			Description:  row.Description,
			Timeline:     row.Timeline,
			Budget:       row.Budget,
			Requirements: row.Requirements,
		},
		Status: intake.Status(row.Status),
		Notes:  row.Notes,
	}, nil
}
