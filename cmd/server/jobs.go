package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	absencehandler "worktime/internal/absence/handler"
	absencemodels "worktime/internal/absence/models"
	compliancehandler "worktime/internal/compliance/handler"
	compliancemodels "worktime/internal/compliance/models"
	integrityhandler "worktime/internal/integrity/handler"
	integritymodels "worktime/internal/integrity/models"
	"worktime/internal/platform/servicetoken"
	id "worktime/pkg/domain"
	"worktime/pkg/requestcontext"
)

// errBatchFailed makes a scheduler see a non-zero exit when any item of a
// batch failed. The JSON report has already been written.
var errBatchFailed = errors.New("batch finished with failures")

// jobFunc runs one batch operation and returns the response to print and
// whether every item succeeded.
type jobFunc func(ctx context.Context, a *app) (any, bool, error)

func runJob(cmd *cobra.Command, opts *rootOptions, name string, fn jobFunc) error {
	ctx := jobContext(cmd.Context(), name)
	a, err := buildApp(ctx, opts.cfg, opts.logger)
	if err != nil {
		return err
	}
	defer a.Close()

	resp, ok, err := fn(ctx, a)
	if err != nil {
		opts.logger.ErrorContext(ctx, "job failed", "job", name, "error", err)
		return err
	}
	if err := writeReport(cmd.OutOrStdout(), resp); err != nil {
		return err
	}
	if !ok {
		return errBatchFailed
	}
	return nil
}

// jobContext gives a command run the same request scope an HTTP call gets.
func jobContext(ctx context.Context, name string) context.Context {
	ctx = requestcontext.WithRequestID(ctx, uuid.NewString())
	ctx = requestcontext.WithCaller(ctx, "cli:"+name)
	return requestcontext.WithTime(ctx, time.Now().UTC())
}

func writeReport(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseOptionalDate(raw string) (*id.Date, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := id.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return &d, nil
}

func parseOptionalEmployee(raw string) (*id.EmployeeID, error) {
	if raw == "" {
		return nil, nil
	}
	e, err := id.ParseEmployeeID(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid employee id %q: %w", raw, err)
	}
	return &e, nil
}

func newEvaluateCommand(opts *rootOptions) *cobra.Command {
	var company, date, employee string
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate labor rules for a company's employees on one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := id.ParseCompanyID(company)
			if err != nil {
				return fmt.Errorf("invalid company id %q: %w", company, err)
			}
			day, err := parseOptionalDate(date)
			if err != nil {
				return err
			}
			employeeID, err := parseOptionalEmployee(employee)
			if err != nil {
				return err
			}
			return runJob(cmd, opts, "evaluate", func(ctx context.Context, a *app) (any, bool, error) {
				result, err := a.compliance.Evaluate(ctx, compliancemodels.EvaluateRequest{
					CompanyID:  companyID,
					Date:       day,
					EmployeeID: employeeID,
				})
				if err != nil {
					return nil, false, err
				}
				return compliancehandler.FromResult(result), result.Success, nil
			})
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company id (required)")
	cmd.Flags().StringVar(&date, "date", "", "day to evaluate as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&employee, "employee", "", "restrict the run to one employee")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func newDailyRootCommand(opts *rootOptions) *cobra.Command {
	var company, date string
	cmd := &cobra.Command{
		Use:   "daily-root",
		Short: "Build and seal the Merkle root of each company's clock events for one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := integritymodels.GenerateRequest{}
			day, err := parseOptionalDate(date)
			if err != nil {
				return err
			}
			req.Date = day
			if company != "" {
				companyID, err := id.ParseCompanyID(company)
				if err != nil {
					return fmt.Errorf("invalid company id %q: %w", company, err)
				}
				req.CompanyID = &companyID
			}
			return runJob(cmd, opts, "daily-root", func(ctx context.Context, a *app) (any, bool, error) {
				result, err := a.integrity.GenerateDailyRoot(ctx, req)
				if err != nil {
					return nil, false, err
				}
				return integrityhandler.FromGenerateResult(result), result.Success, nil
			})
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "only this company (default all)")
	cmd.Flags().StringVar(&date, "date", "", "UTC day as YYYY-MM-DD (default yesterday)")
	return cmd
}

func newReconcileCommand(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Retry failed or pending QTSP evidences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd, opts, "reconcile", func(ctx context.Context, a *app) (any, bool, error) {
				if a.reconciler == nil {
					return nil, false, errors.New("qtsp is not configured")
				}
				result, err := a.reconciler.Run(ctx, force)
				if err != nil {
					return nil, false, err
				}
				return integrityhandler.FromReconcileResult(result), result.Success, nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "ignore next_retry_at and retry every failed evidence")
	return cmd
}

func newManifestCommand(opts *rootOptions) *cobra.Command {
	var company, start, end string
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the integrity manifest of a company for a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := id.ParseCompanyID(company)
			if err != nil {
				return fmt.Errorf("invalid company id %q: %w", company, err)
			}
			startDate, err := id.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := id.ParseDate(end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}
			return runJob(cmd, opts, "manifest", func(ctx context.Context, a *app) (any, bool, error) {
				manifest, err := a.integrity.Manifest(ctx, companyID, startDate, endDate)
				if err != nil {
					return nil, false, err
				}
				return manifest, true, nil
			})
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company id (required)")
	cmd.Flags().StringVar(&start, "start", "", "first day as YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "last day as YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newVacationCommand(opts *rootOptions) *cobra.Command {
	var company, employee string
	var year int
	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Recalculate vacation balances for a company and year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			companyID, err := id.ParseCompanyID(company)
			if err != nil {
				return fmt.Errorf("invalid company id %q: %w", company, err)
			}
			employeeID, err := parseOptionalEmployee(employee)
			if err != nil {
				return err
			}
			if year == 0 {
				year = time.Now().UTC().Year()
			}
			return runJob(cmd, opts, "vacation", func(ctx context.Context, a *app) (any, bool, error) {
				result, err := a.vacation.Recalculate(ctx, absencemodels.RecalculateRequest{
					CompanyID:  companyID,
					Year:       year,
					EmployeeID: employeeID,
				})
				if err != nil {
					return nil, false, err
				}
				return absencehandler.FromRecalculateResult(result), result.Success, nil
			})
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company id (required)")
	cmd.Flags().IntVar(&year, "year", 0, "balance year (default current year)")
	cmd.Flags().StringVar(&employee, "employee", "", "restrict the run to one employee")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}

func newEscalateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "escalate",
		Short: "Escalate or remind pending absence requests past their approval SLA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJob(cmd, opts, "escalate", func(ctx context.Context, a *app) (any, bool, error) {
				result, err := a.escalator.Run(ctx)
				if err != nil {
					return nil, false, err
				}
				return absencehandler.FromEscalationResult(result), result.Success, nil
			})
		},
	}
}

func newIssueTokenCommand(opts *rootOptions) *cobra.Command {
	var subject, scope string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Print a service token for a scheduler or operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ttl <= 0 {
				ttl = opts.cfg.ServiceTokenTTL
			}
			tokens := servicetoken.New(opts.cfg.ServiceTokenKey, opts.cfg.ServiceTokenIssuer)
			token, err := tokens.Issue(subject, scope, ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "caller recorded in audit events (required)")
	cmd.Flags().StringVar(&scope, "scope", "scheduler", "token scope")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default WORKTIME_SERVICE_TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
