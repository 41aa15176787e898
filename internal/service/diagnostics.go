package service

import (
	"context"

	"travelbot/internal/model"
)

// maxListedTables caps the table names reported by diagnostics
const maxListedTables = 10

// StorageProbe inspects the optional chat log database
type StorageProbe interface {
	Ping(ctx context.Context) error
	DatabaseName(ctx context.Context) (string, error)
	ListTables(ctx context.Context, limit int) ([]string, error)
}

// DiagnosticsService reports on the availability of the chat log database
type DiagnosticsService struct {
	probe           StorageProbe
	databaseURLSet  bool
	databaseNameSet bool
}

// NewDiagnosticsService creates a diagnostics service. probe is nil when no
// database is configured or the connection failed at startup.
func NewDiagnosticsService(probe StorageProbe, databaseURLSet, databaseNameSet bool) *DiagnosticsService {
	return &DiagnosticsService{
		probe:           probe,
		databaseURLSet:  databaseURLSet,
		databaseNameSet: databaseNameSet,
	}
}

// Report checks the database. Failures are described in the report, never returned.
func (d *DiagnosticsService) Report(ctx context.Context) *model.StorageDiagnostics {
	report := &model.StorageDiagnostics{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if d.probe == nil {
		if d.databaseURLSet {
			report.Database = "⚠️  Configured but not connected"
		}
	} else if err := d.probe.Ping(ctx); err != nil {
		report.Database = "❌ Error: " + truncate(err.Error(), 50)
	} else {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		if tables, err := d.probe.ListTables(ctx, maxListedTables); err != nil {
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			report.Collections = append(report.Collections, tables...)
			report.Database = "✅ Connected & Working"
		}
	}

	report.DatabaseURL = setMark(d.databaseURLSet)
	report.DatabaseName = setMark(d.databaseNameSet)
	if d.probe != nil && report.ConnectionStatus == "Connected" && !d.databaseNameSet {
		if name, err := d.probe.DatabaseName(ctx); err == nil && name != "" {
			report.DatabaseName = "✅ " + name
		}
	}

	return report
}

func setMark(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
