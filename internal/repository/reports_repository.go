package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/alimentify/internal/error_values"
	"github.com/limbo/alimentify/pkg/entity"
)

// ReportsRepository keeps report snapshots. Summary and compliance live in JSONB
// columns and are returned exactly as written.
type ReportsRepository struct {
	conn PgConnection
}

func NewReportsRepo(cfg DBConfig) *ReportsRepository {
	return &ReportsRepository{
		conn: NewPool(cfg),
	}
}

func NewReportsRepoWithConn(conn PgConnection) *ReportsRepository {
	mustPing(conn, "reportsRepo")
	return &ReportsRepository{
		conn: conn,
	}
}

func (rr *ReportsRepository) Create(ctx context.Context, report *entity.Report) (uuid.UUID, error) {
	summary, compliance, err := encodeSnapshot(report)
	if err != nil {
		return uuid.UUID{}, errors.New("encoding report snapshot error: " + err.Error())
	}
	recommendations := report.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	var id uuid.UUID
	row := rr.conn.QueryRow(ctx, `INSERT INTO reports (user_id, report_type, start_date, end_date, summary, compliance, ai_insights, recommendations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		report.UserID,
		string(report.Type),
		report.StartDate.Time,
		report.EndDate.Time,
		summary,
		compliance,
		report.AIInsights,
		recommendations,
		report.CreatedAt,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, storeError("creating report", err)
	}
	return id, nil
}

func (rr *ReportsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var rc reportColumns
	row := rr.conn.QueryRow(ctx, `SELECT user_id, report_type, start_date, end_date, summary, compliance, ai_insights, recommendations, created_at
		FROM reports WHERE id = $1;`, id)
	err := row.Scan(&rc.userID, &rc.reportType, &rc.startDate, &rc.endDate, &rc.summary, &rc.compliance,
		&rc.aiInsights, &rc.recommendations, &rc.createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReportNotFound
		}
		return nil, storeError("getting report by id", err)
	}
	rc.id = id
	return rc.toEntity()
}

func (rr *ReportsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Report, error) {
	rows, err := rr.conn.Query(ctx, `SELECT id, report_type, start_date, end_date, summary, compliance, ai_insights, recommendations, created_at
		FROM reports WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, storeError("getting reports by uid", err)
	}
	defer rows.Close()
	reports := make([]*entity.Report, 0)
	for rows.Next() {
		var rc reportColumns
		err = rows.Scan(&rc.id, &rc.reportType, &rc.startDate, &rc.endDate, &rc.summary, &rc.compliance,
			&rc.aiInsights, &rc.recommendations, &rc.createdAt)
		if err != nil {
			return nil, storeError("report row parsing", err)
		}
		rc.userID = uid
		report, err := rc.toEntity()
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err = rows.Err(); err != nil {
		return nil, storeError("unexpected report rows error", err)
	}
	return reports, nil
}

func (rr *ReportsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM reports WHERE id = $1;`, id)
	if err != nil {
		return storeError("deleting report", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReportNotFound
	}
	return nil
}

type reportColumns struct {
	id              uuid.UUID
	userID          uuid.UUID
	reportType      string
	startDate       time.Time
	endDate         time.Time
	summary         []byte
	compliance      []byte
	aiInsights      *string
	recommendations []string
	createdAt       time.Time
}

func (rc *reportColumns) toEntity() (*entity.Report, error) {
	report := entity.Report{
		ID:              rc.id,
		UserID:          rc.userID,
		Type:            entity.ReportType(rc.reportType),
		StartDate:       entity.DateOf(rc.startDate),
		EndDate:         entity.DateOf(rc.endDate),
		AIInsights:      rc.aiInsights,
		Recommendations: rc.recommendations,
		CreatedAt:       rc.createdAt,
	}
	if report.Recommendations == nil {
		report.Recommendations = []string{}
	}
	if err := sonic.Unmarshal(rc.summary, &report.Summary); err != nil {
		return nil, errors.New("decoding report summary error: " + err.Error())
	}
	if len(rc.compliance) > 0 {
		var c entity.Compliance
		if err := sonic.Unmarshal(rc.compliance, &c); err != nil {
			return nil, errors.New("decoding report compliance error: " + err.Error())
		}
		report.Compliance = &c
	}
	return &report, nil
}

func encodeSnapshot(report *entity.Report) (summary, compliance []byte, err error) {
	summary, err = sonic.Marshal(report.Summary)
	if err != nil {
		return nil, nil, err
	}
	if report.Compliance != nil {
		compliance, err = sonic.Marshal(report.Compliance)
		if err != nil {
			return nil, nil, err
		}
	}
	return summary, compliance, nil
}
