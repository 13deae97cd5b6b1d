package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timeloom/internal/store"
	"timeloom/internal/store/sqlite"
)

// scriptedBackend returns canned completions in order.
type scriptedBackend struct {
	replies []string
	errs    []error
	calls   int
	systems []string
}

func (b *scriptedBackend) Name() string { return "scripted" }

func (b *scriptedBackend) Complete(ctx context.Context, system string, history []store.Message) (string, error) {
	i := b.calls
	b.calls++
	b.systems = append(b.systems, system)
	if i < len(b.errs) && b.errs[i] != nil {
		return "", b.errs[i]
	}
	if i >= len(b.replies) {
		return "", fmt.Errorf("unexpected call %d", i)
	}
	return b.replies[i], nil
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.New(ctx, "sqlite://"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { st.Close(ctx) })

	if err := st.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensuring schema: %v", err)
	}
	return st
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	dir := t.TempDir()

	backend := &scriptedBackend{replies: []string{"a world", "a report"}}
	gen := &Generator{Store: st, Backend: backend, ExportDir: dir}

	result, err := gen.Run(ctx, 1492, "no atlantic crossing")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.ExportErr != nil {
		t.Fatalf("export: %v", result.ExportErr)
	}

	if backend.calls != 2 {
		t.Errorf("expected two completions (world, report), got %d", backend.calls)
	}
	// The second completion must be grounded on the first.
	if len(backend.systems) == 2 {
		if !strings.Contains(backend.systems[1], "a world") {
			t.Errorf("report system prompt does not embed the world description")
		}
		if !strings.Contains(backend.systems[0], "1492") || !strings.Contains(backend.systems[0], "no atlantic crossing") {
			t.Errorf("world system prompt does not embed the parameters")
		}
	}

	report, err := st.GetReport(ctx, result.ReportID)
	if err != nil {
		t.Fatalf("getting stored report: %v", err)
	}
	if report.Narrative != "a report" || report.WorldDescription != "a world" {
		t.Errorf("stored report = %+v", report)
	}

	contents, err := os.ReadFile(result.ExportPath)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(contents) != "a report" {
		t.Errorf("export contents = %q", contents)
	}
}

func TestRunBackendFailureLeavesStoreEmpty(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	backend := &scriptedBackend{errs: []error{errors.New("boom")}}
	gen := &Generator{Store: st, Backend: backend, ExportDir: t.TempDir()}

	if _, err := gen.Run(ctx, 1900, "notes"); err == nil {
		t.Fatalf("expected error")
	}

	reports, err := st.ListReports(ctx)
	if err != nil {
		t.Fatalf("listing reports: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("failed generation must not persist a report, got %d", len(reports))
	}
}

func TestExportPath(t *testing.T) {
	if got := ExportPath("/tmp", 7); got != filepath.Join("/tmp", "Report_7.txt") {
		t.Errorf("ExportPath = %q", got)
	}
}

func TestRemoveExport(t *testing.T) {
	dir := t.TempDir()

	removed, err := RemoveExport(dir, 3)
	if err != nil {
		t.Fatalf("remove of absent export: %v", err)
	}
	if removed {
		t.Errorf("expected removed=false for an absent file")
	}

	path := ExportPath(dir, 3)
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("writing export: %v", err)
	}

	removed, err = RemoveExport(dir, 3)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !removed {
		t.Errorf("expected removed=true")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("export file still present")
	}
}
