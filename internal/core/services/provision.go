package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"eval-workbench/internal/core/domain"
	ports "eval-workbench/internal/core/ports/output"
)

// ProvisionService runs the full provisioning sequence: namespace, tables,
// stage, mirror refresh, sync groups, application binding. The sequence is
// an explicit dependency list rather than positional script order; every
// step is idempotent or intentionally replacing, so re-running the whole
// sequence is the recovery path after any failure.
type ProvisionService struct {
	schema  ports.SchemaManager
	stage   ports.StageStore
	mirror  ports.RepositoryMirror
	sync    *SyncService
	binding *AppBindingService

	desc    domain.ResourceDescriptor
	groups  []domain.SyncGroup
	appDecl domain.AppBinding
}

func NewProvisionService(
	schema ports.SchemaManager,
	stage ports.StageStore,
	mirror ports.RepositoryMirror,
	sync *SyncService,
	binding *AppBindingService,
	desc domain.ResourceDescriptor,
	groups []domain.SyncGroup,
	appDecl domain.AppBinding,
) *ProvisionService {
	return &ProvisionService{
		schema:  schema,
		stage:   stage,
		mirror:  mirror,
		sync:    sync,
		binding: binding,
		desc:    desc,
		groups:  groups,
		appDecl: appDecl,
	}
}

type provisionStep struct {
	name     string
	requires []string
	run      func(ctx context.Context) error
}

// Run executes the provisioning sequence. Any step error aborts the run;
// no partial-state repair is attempted.
func (s *ProvisionService) Run(ctx context.Context) error {
	steps := s.steps()
	completed := make(map[string]bool, len(steps))

	for _, step := range steps {
		for _, req := range step.requires {
			if !completed[req] {
				return fmt.Errorf("%w: %s requires %s", domain.ErrStepUnsatisfied, step.name, req)
			}
		}
		log.WithField("step", step.name).Info("provisioning step started")
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("provisioning step %s: %w", step.name, err)
		}
		completed[step.name] = true
		log.WithField("step", step.name).Info("provisioning step completed")
	}
	return nil
}

func (s *ProvisionService) steps() []provisionStep {
	steps := []provisionStep{
		{
			name: "schema",
			run: func(ctx context.Context) error {
				return s.schema.EnsureSchema(ctx, s.desc)
			},
		},
	}

	for _, spec := range TableSpecs() {
		spec := spec
		steps = append(steps, provisionStep{
			name:     "table:" + spec.Name,
			requires: []string{"schema"},
			run: func(ctx context.Context) error {
				return s.schema.EnsureTable(ctx, spec, s.desc)
			},
		})
	}

	steps = append(steps,
		provisionStep{
			name: "stage",
			run: func(ctx context.Context) error {
				return s.stage.EnsureBucket(ctx, s.desc)
			},
		},
		provisionStep{
			name: "mirror-refresh",
			run: func(ctx context.Context) error {
				return s.mirror.Refresh(ctx)
			},
		},
	)

	// Sync groups run in declared order; later groups win on overlap.
	syncRequires := []string{"stage", "mirror-refresh"}
	var groupSteps []string
	for _, group := range s.groups {
		group := group
		name := "sync:" + group.Name
		steps = append(steps, provisionStep{
			name:     name,
			requires: syncRequires,
			run: func(ctx context.Context) error {
				_, err := s.sync.Copy(ctx, group)
				return err
			},
		})
		groupSteps = append(groupSteps, name)
	}

	bindingRequires := append([]string{"table:" + TableAppBindings, "stage"}, groupSteps...)
	steps = append(steps, provisionStep{
		name:     "app-binding",
		requires: bindingRequires,
		run: func(ctx context.Context) error {
			return s.binding.Declare(ctx, s.appDecl)
		},
	})

	return steps
}

const (
	TableSavedEvaluations = "saved_evaluations"
	TableAutoEvaluations  = "auto_evaluations"
	TableCustomMetrics    = "custom_metrics"
	TableAppBindings      = "app_bindings"
)

func evaluationColumns() []domain.Column {
	return []domain.Column{
		{Name: "eval_name", Type: "TEXT PRIMARY KEY"},
		{Name: "description", Type: "TEXT"},
		{Name: "metric_names", Type: "TEXT[] NOT NULL DEFAULT '{}'"},
		{Name: "source_sql", Type: "TEXT NOT NULL DEFAULT ''"},
		{Name: "param_assignments", Type: "JSONB NOT NULL DEFAULT '{}'"},
		{Name: "associated_objects", Type: "JSONB NOT NULL DEFAULT '{}'"},
		{Name: "models", Type: "JSONB NOT NULL DEFAULT '{}'"},
		{Name: "updated_at", Type: "TIMESTAMPTZ NOT NULL DEFAULT now()"},
	}
}

// TableSpecs declares the full metadata store. The saved and auto
// evaluation tables are structurally identical on purpose; they differ
// only in lifecycle trigger.
func TableSpecs() []domain.TableSpec {
	return []domain.TableSpec{
		{Name: TableSavedEvaluations, Columns: evaluationColumns()},
		{Name: TableAutoEvaluations, Columns: evaluationColumns()},
		{Name: TableCustomMetrics, Columns: []domain.Column{
			{Name: "metric_name", Type: "TEXT PRIMARY KEY"},
			{Name: "stage_file_path", Type: "TEXT NOT NULL"},
			{Name: "created_at", Type: "TIMESTAMPTZ NOT NULL DEFAULT now()"},
			{Name: "show_metric", Type: "BOOLEAN NOT NULL DEFAULT true"},
			{Name: "creation_user", Type: "TEXT"},
		}},
		{Name: TableAppBindings, Columns: []domain.Column{
			{Name: "app_name", Type: "TEXT PRIMARY KEY"},
			{Name: "title", Type: "TEXT"},
			{Name: "stage_root", Type: "TEXT NOT NULL"},
			{Name: "entry_file", Type: "TEXT NOT NULL"},
			{Name: "query_warehouse", Type: "TEXT"},
			{Name: "updated_at", Type: "TIMESTAMPTZ NOT NULL DEFAULT now()"},
		}},
	}
}

// DefaultSyncGroups is the declared set of code groups copied from the
// mirror into the stage: the top-level entry files, the interpreted
// source modules, and the UI page modules.
func DefaultSyncGroups() []domain.SyncGroup {
	return []domain.SyncGroup{
		{
			Name:              "root",
			SourceRef:         "",
			DestinationPrefix: "",
			Selector:          domain.Selector{Names: []string{"home.py", "environment.yml"}},
		},
		{
			Name:              "src",
			SourceRef:         "src",
			DestinationPrefix: "src",
			Selector:          domain.Selector{Pattern: `.*\.py$`},
		},
		{
			Name:              "pages",
			SourceRef:         "pages",
			DestinationPrefix: "pages",
			Selector:          domain.Selector{Pattern: `.*\.py$`},
		},
	}
}
