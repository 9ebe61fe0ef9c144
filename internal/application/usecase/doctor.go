package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/kkc-shortcuts/internal/application/port"
	"github.com/bnema/kkc-shortcuts/internal/domain/entity"
)

// CheckStatus grades one doctor check.
type CheckStatus int

const (
	CheckOK CheckStatus = iota
	CheckWarn
	CheckFail
)

// DoctorCheck is one line of the doctor report.
type DoctorCheck struct {
	Name   string
	Detail string
	Status CheckStatus
}

// DoctorInput lists what the checks look at.
type DoctorInput struct {
	Roots []string
	// Database is nil when user rules are stored as JSON files.
	Database port.DatabaseProvider
}

// DoctorOutput is the doctor report.
type DoctorOutput struct {
	Checks []DoctorCheck
	OK     bool
}

// DoctorUseCase checks that rules can be found and user rules stored.
type DoctorUseCase struct {
	catalog    port.RuleCatalog
	activeRule *ActiveRuleUseCase
	dirExists  func(string) (bool, error)
}

// NewDoctorUseCase creates a new DoctorUseCase. dirExists reports whether
// a rule root is present.
func NewDoctorUseCase(catalog port.RuleCatalog, activeRule *ActiveRuleUseCase, dirExists func(string) (bool, error)) *DoctorUseCase {
	return &DoctorUseCase{catalog: catalog, activeRule: activeRule, dirExists: dirExists}
}

// Execute runs every check. A failing check never stops the others.
func (uc *DoctorUseCase) Execute(ctx context.Context, input DoctorInput) (*DoctorOutput, error) {
	if uc == nil || uc.catalog == nil || uc.activeRule == nil || uc.dirExists == nil {
		return nil, fmt.Errorf("doctor use case is not wired")
	}

	out := &DoctorOutput{}
	out.Checks = append(out.Checks, uc.checkRoots(input.Roots)...)

	rules, err := uc.catalog.ListRules(ctx)
	switch {
	case err != nil:
		out.Checks = append(out.Checks, DoctorCheck{Name: "Rules", Detail: err.Error(), Status: CheckFail})
	case len(rules) == 0:
		out.Checks = append(out.Checks, DoctorCheck{Name: "Rules", Detail: "no rule found in any root", Status: CheckFail})
	default:
		out.Checks = append(out.Checks, DoctorCheck{Name: "Rules", Detail: fmt.Sprintf("%d found", len(rules))})
	}

	out.Checks = append(out.Checks, uc.checkActiveRule(ctx, rules), checkStorage(ctx, input.Database))

	out.OK = !slices.ContainsFunc(out.Checks, func(c DoctorCheck) bool { return c.Status == CheckFail })
	return out, nil
}

func (uc *DoctorUseCase) checkRoots(roots []string) []DoctorCheck {
	checks := make([]DoctorCheck, 0, len(roots)+1)
	present := 0
	for _, root := range roots {
		ok, err := uc.dirExists(root)
		switch {
		case err != nil:
			checks = append(checks, DoctorCheck{Name: "Rule root", Detail: fmt.Sprintf("%s: %v", root, err), Status: CheckWarn})
		case ok:
			present++
			checks = append(checks, DoctorCheck{Name: "Rule root", Detail: root})
		default:
			checks = append(checks, DoctorCheck{Name: "Rule root", Detail: root + " (missing)", Status: CheckWarn})
		}
	}
	if present == 0 {
		checks = append(checks, DoctorCheck{Name: "Rule roots", Detail: "none of the rule roots exist", Status: CheckFail})
	}
	return checks
}

func (uc *DoctorUseCase) checkActiveRule(ctx context.Context, rules []entity.RuleMetadata) DoctorCheck {
	name, err := uc.activeRule.Load(ctx)
	if err != nil {
		return DoctorCheck{Name: "Active rule", Detail: err.Error(), Status: CheckFail}
	}
	if !slices.ContainsFunc(rules, func(r entity.RuleMetadata) bool { return r.Name == name }) {
		return DoctorCheck{Name: "Active rule", Detail: name + " (not installed)", Status: CheckWarn}
	}
	return DoctorCheck{Name: "Active rule", Detail: name}
}

func checkStorage(ctx context.Context, db port.DatabaseProvider) DoctorCheck {
	if db == nil {
		return DoctorCheck{Name: "Storage", Detail: "json files"}
	}
	conn, err := db.DB(ctx)
	if err == nil {
		err = conn.PingContext(ctx)
	}
	if err != nil {
		return DoctorCheck{Name: "Storage", Detail: fmt.Sprintf("sqlite %s: %v", db.Path(), err), Status: CheckFail}
	}
	return DoctorCheck{Name: "Storage", Detail: "sqlite " + db.Path()}
}
