package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/totegamma/council-reports/internal/chart"
	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/format"
	"github.com/totegamma/council-reports/internal/record"
	"github.com/totegamma/council-reports/internal/report"
)

const (
	councilsJSON = `{"records":[
		{"id":"recE1","fields":{"issuingCouncil":"Leeds","councilHub":"/leeds","raiseStatus":["Open"],"totalRaised":1500,"loans":2,"renewableEnergySpend":400}},
		{"id":"recE2","fields":{"issuingCouncil":"York","councilHub":"/york","raiseStatus":["Coming soon"]}}
	]}`
	loansJSON = `[
		{"id":"recL1","fields":{"investmentName":"Leeds Bond","councilID":["recE1"],"raiseStatus":"Open"}},
		{"id":"recL2","fields":{"investmentName":"Leeds Bond 1","councilID":["recE1"],"raiseStatus":"Closed","closeDate":"2023-01-01"}}
	]`
	projectsJSON = `[{"id":"recP1","fields":{"projectName":"Solar","councilID":["recE1"],"totalSpent":400}}]`
)

// mockSource serves canned payloads, optional errors and optional blocking.
type mockSource struct {
	mu      sync.Mutex
	calls   map[domain.Collection]int
	errs    map[domain.Collection]error
	block   map[domain.Collection]chan struct{}
	payload map[domain.Collection]string
}

func newMockSource() *mockSource {
	return &mockSource{
		calls: map[domain.Collection]int{},
		errs:  map[domain.Collection]error{},
		block: map[domain.Collection]chan struct{}{},
		payload: map[domain.Collection]string{
			domain.CollectionEntities:  councilsJSON,
			domain.CollectionOfferings: loansJSON,
			domain.CollectionProjects:  projectsJSON,
		},
	}
}

func (m *mockSource) Fetch(ctx context.Context, c domain.Collection) ([]record.Record, error) {
	m.mu.Lock()
	m.calls[c]++
	gate := m.block[c]
	err := m.errs[c]
	payload := m.payload[c]
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return record.Parse([]byte(payload))
}

func newTestUsecase(src RecordSource, watchdog time.Duration) *PageUsecase {
	builder := report.NewBuilder(format.ASCII(), chart.DefaultPalette, domain.DefaultSiteCopy())
	return NewPageUsecase(src, builder, watchdog)
}

func TestDashboardLoadsAllCollections(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newMockSource()
	uc := newTestUsecase(src, time.Second)

	d, err := uc.Dashboard(context.Background(), "recE1")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if !d.Complete {
		t.Fatalf("expected complete dashboard")
	}
	for _, c := range domain.Collections {
		if src.calls[c] != 1 {
			t.Fatalf("expected one fetch of %s, got %d", c, src.calls[c])
		}
	}
	if d.Mode != report.ModeOpen || len(d.Open.Items) != 1 || len(d.History.Items) != 1 || len(d.Projects.Items) != 1 {
		t.Fatalf("unexpected dashboard %+v", d)
	}
}

func TestDashboardProjectFailureIsIsolated(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := newMockSource()
	src.errs[domain.CollectionProjects] = errors.New("projects down")
	uc := newTestUsecase(src, time.Second)

	d, err := uc.Dashboard(context.Background(), "recE1")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if d.Projects.State != report.StateFailed {
		t.Fatalf("expected failed projects, got %v", d.Projects.State)
	}
	if d.Open.State != report.StateReady {
		t.Fatalf("offerings should still render, got %v", d.Open.State)
	}
}

func TestDashboardErrors(t *testing.T) {
	src := newMockSource()
	uc := newTestUsecase(src, time.Second)

	if _, err := uc.Dashboard(context.Background(), "recE2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("excluded council should be not found, got %v", err)
	}
	if _, err := uc.Dashboard(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	src.errs[domain.CollectionEntities] = errors.New("councils down")
	_, err := uc.Dashboard(context.Background(), "recE1")
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestWatchdogRevealsPartialPage(t *testing.T) {
	src := newMockSource()
	gate := make(chan struct{})
	src.block[domain.CollectionProjects] = gate
	t.Cleanup(func() { close(gate) })

	uc := newTestUsecase(src, 50*time.Millisecond)

	start := time.Now()
	d, err := uc.Dashboard(context.Background(), "recE1")
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("watchdog did not bound the wait: %v", elapsed)
	}
	if d.Complete {
		t.Fatalf("expected incomplete dashboard")
	}
	if d.Projects.State != report.StatePending {
		t.Fatalf("expected pending projects, got %v", d.Projects.State)
	}
	if d.Open.State != report.StateReady {
		t.Fatalf("settled sections should render, got %v", d.Open.State)
	}
}

func TestDirectoryAndHome(t *testing.T) {
	defer goleak.VerifyNone(t)

	uc := newTestUsecase(newMockSource(), time.Second)
	ctx := context.Background()

	dir := uc.Directory(ctx)
	if !dir.Complete || len(dir.Open.Items) != 1 || dir.Excluded != 1 {
		t.Fatalf("unexpected directory %+v", dir)
	}
	if dir.Stats.TotalInvested != "£1.5k" {
		t.Fatalf("unexpected invested stat %q", dir.Stats.TotalInvested)
	}

	home := uc.Home(ctx)
	if !home.Available || home.SpentOnProjects != "£400" {
		t.Fatalf("unexpected home stats %+v", home)
	}

	ex := uc.Explorer(ctx)
	if len(ex.Options) != 2 || ex.Options[1].Label != "Leeds" {
		t.Fatalf("unexpected explorer options %+v", ex.Options)
	}

	list := uc.Offerings(ctx)
	if len(list.Offerings.Items) != 1 || list.Offerings.Items[0].Name != "Leeds Bond" {
		t.Fatalf("unexpected offerings %+v", list.Offerings)
	}
}

func TestDirectoryFetchFailure(t *testing.T) {
	src := newMockSource()
	src.errs[domain.CollectionEntities] = errors.New("down")
	dir := newTestUsecase(src, time.Second).Directory(context.Background())
	if dir.Open.State != report.StateFailed || dir.Open.Message != report.CouncilsFailedMessage {
		t.Fatalf("unexpected failure state %+v", dir.Open)
	}
}
