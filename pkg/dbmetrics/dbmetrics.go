package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

const defaultStatsInterval = 15 * time.Second

// DBExecutor интерфейс выполнения запросов на чтение
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB обертка над *sql.DB, замеряющая длительность запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает соединение без сбора статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает соединение и раз в 15 секунд снимает статистику пула,
// пока не закроется stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectStats(dbName, defaultStatsInterval, stopCh)
	return wrapped
}

// QueryContext выполняет запрос и фиксирует его длительность
func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки и фиксирует его длительность
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

func (d *DB) observe(query string, start time.Time, err error) {
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	d.metrics.DBQueryDuration.
		WithLabelValues(operationName(query), status).
		Observe(time.Since(start).Seconds())
}

func (d *DB) collectStats(dbName string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBOpenConnections.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
			d.metrics.DBInUse.WithLabelValues(dbName).Set(float64(stats.InUse))
		}
	}
}

// operationName первое слово запроса в нижнем регистре ("select", "insert", ...)
func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
