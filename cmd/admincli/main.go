package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"pension-admin/internal/adapters/localstore"
	"pension-admin/internal/adapters/rest"
	"pension-admin/internal/config"
	"pension-admin/internal/core/domain"
	"pension-admin/internal/core/services"
	"pension-admin/internal/core/session"
	"pension-admin/internal/pkg/pagination"
)

const usage = `pension-admin CLI

Usage:
  admincli login -email <email> -password <password>
  admincli logout
  admincli whoami
  admincli members list [-page N] [-size N] [-search Q]
  admincli members get -id <id>
  admincli members search -q <query>
  admincli members stats -id <id>
  admincli claims list [-page N] [-size N]
  admincli claims approve -id <id> -amount <amount> -comments <text>
  admincli claims reject -id <id> -comments <text>
  admincli contributions list [-page N] [-size N]
  admincli contributions member -id <member id>
  admincli payments init -gateway <PAYSTACK|FLUTTERWAVE> -member <id> -amount <amount> -method <method>
  admincli payments verify -ref <reference>
  admincli reports list
  admincli reports generate -type <type> -format <PDF|EXCEL|CSV>
  admincli reports download -id <id> -out <file>
  admincli dashboard
  admincli risk -member <id>
`

// app bundles the wired client, session and service modules.
type app struct {
	session       *session.Store
	auth          *services.AuthService
	members       *services.MemberService
	contributions *services.ContributionService
	benefits      *services.BenefitService
	payments      *services.PaymentService
	reports       *services.ReportService
	dashboard     *services.DashboardService
	fraud         *services.FraudService
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	storage, err := localstore.New(cfg.StateDir)
	if err != nil {
		log.Fatalf("failed to open state store: %v", err)
	}

	// The dashboard redirects to /login here; the CLI just says so.
	navigateToLogin := func() {
		log.Println("session ended, run 'admincli login' to sign in again")
	}

	sess := session.New(storage, navigateToLogin)
	sess.Initialize()

	api := rest.New(cfg.BaseURL, cfg.Timeout)
	api.UseRequest(rest.BearerAuth(storage))
	api.UseRequest(rest.RequestID())
	api.UseResponse(rest.SessionGuard(storage, navigateToLogin))
	api.UseResponse(rest.Notify(rest.LogNotifier))

	a := &app{
		session:       sess,
		auth:          services.NewAuthService(api, storage, sess),
		members:       services.NewMemberService(api),
		contributions: services.NewContributionService(api),
		benefits:      services.NewBenefitService(api),
		payments:      services.NewPaymentService(api),
		reports:       services.NewReportService(api),
		dashboard:     services.NewDashboardService(api),
		fraud:         services.NewFraudService(api),
	}

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.auth.Logout()
	case "whoami":
		return a.whoami()
	case "members":
		return a.runMembers(ctx, args)
	case "claims":
		return a.runClaims(ctx, args)
	case "contributions":
		return a.runContributions(ctx, args)
	case "payments":
		return a.runPayments(ctx, args)
	case "reports":
		return a.runReports(ctx, args)
	case "dashboard":
		return a.runDashboard(ctx)
	case "risk":
		return a.runRisk(ctx, args)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("login requires -email and -password")
	}

	_, err := a.auth.Login(ctx, &services.LoginInput{Email: *email, Password: *password})
	if err != nil {
		return err
	}
	log.Printf("logged in as %s", *email)
	return nil
}

func (a *app) whoami() error {
	user := a.session.Current()
	if user == nil {
		log.Println("not logged in")
		return nil
	}
	if a.session.CredentialExpired() {
		log.Println("stored credential has expired")
	}
	return printJSON(user)
}

func (a *app) runMembers(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("members requires a subcommand")
	}
	fs := flag.NewFlagSet("members", flag.ExitOnError)
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", pagination.DefaultSize, "page size")
	search := fs.String("search", "", "search filter")
	query := fs.String("q", "", "search query")
	id := fs.Int64("id", 0, "member id")
	fs.Parse(args[1:])

	switch args[0] {
	case "list":
		result, err := a.members.GetAll(ctx, pagination.Params{Page: *page, Size: *size, Search: *search})
		if err != nil {
			return err
		}
		return printJSON(result)
	case "get":
		member, err := a.members.GetByID(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(member)
	case "search":
		members, err := a.members.Search(ctx, *query)
		if err != nil {
			return err
		}
		return printJSON(members)
	case "stats":
		stats, err := a.members.Stats(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(stats)
	default:
		return fmt.Errorf("unknown members subcommand %q", args[0])
	}
}

func (a *app) runClaims(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("claims requires a subcommand")
	}
	fs := flag.NewFlagSet("claims", flag.ExitOnError)
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", pagination.DefaultSize, "page size")
	id := fs.Int64("id", 0, "claim id")
	amount := fs.Float64("amount", 0, "approved amount")
	comments := fs.String("comments", "", "review comments")
	fs.Parse(args[1:])

	switch args[0] {
	case "list":
		result, err := a.benefits.GetAll(ctx, pagination.Params{Page: *page, Size: *size})
		if err != nil {
			return err
		}
		return printJSON(result)
	case "approve":
		claim, err := a.benefits.Approve(ctx, *id, &services.ApprovalInput{
			ApprovedAmount: *amount,
			ReviewComments: *comments,
		})
		if err != nil {
			return err
		}
		return printJSON(claim)
	case "reject":
		claim, err := a.benefits.Reject(ctx, *id, *comments)
		if err != nil {
			return err
		}
		return printJSON(claim)
	case "cancel":
		return a.benefits.Cancel(ctx, *id)
	default:
		return fmt.Errorf("unknown claims subcommand %q", args[0])
	}
}

func (a *app) runContributions(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("contributions requires a subcommand")
	}
	fs := flag.NewFlagSet("contributions", flag.ExitOnError)
	page := fs.Int("page", 0, "page number")
	size := fs.Int("size", pagination.DefaultSize, "page size")
	id := fs.Int64("id", 0, "member id")
	fs.Parse(args[1:])

	switch args[0] {
	case "list":
		result, err := a.contributions.GetAll(ctx, pagination.Params{Page: *page, Size: *size})
		if err != nil {
			return err
		}
		return printJSON(result)
	case "member":
		result, err := a.contributions.GetByMember(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(result)
	default:
		return fmt.Errorf("unknown contributions subcommand %q", args[0])
	}
}

func (a *app) runPayments(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("payments requires a subcommand")
	}
	fs := flag.NewFlagSet("payments", flag.ExitOnError)
	gateway := fs.String("gateway", string(domain.GatewayPaystack), "payment gateway")
	member := fs.Int64("member", 0, "member id")
	amount := fs.Float64("amount", 0, "amount")
	method := fs.String("method", "CARD", "payment method")
	ref := fs.String("ref", "", "transaction reference")
	fs.Parse(args[1:])

	switch args[0] {
	case "init":
		resp, err := a.payments.Initialize(ctx, domain.Gateway(*gateway), &services.PaymentInput{
			MemberID:      *member,
			Amount:        *amount,
			PaymentMethod: *method,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)
	case "verify":
		payment, err := a.payments.Verify(ctx, *ref)
		if err != nil {
			return err
		}
		return printJSON(payment)
	case "member":
		payments, err := a.payments.GetByMember(ctx, *member)
		if err != nil {
			return err
		}
		return printJSON(payments)
	default:
		return fmt.Errorf("unknown payments subcommand %q", args[0])
	}
}

func (a *app) runReports(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("reports requires a subcommand")
	}
	fs := flag.NewFlagSet("reports", flag.ExitOnError)
	reportType := fs.String("type", string(domain.ReportMemberSummary), "report type")
	format := fs.String("format", string(domain.FormatPDF), "file format")
	id := fs.Int64("id", 0, "report id")
	out := fs.String("out", "report.out", "output file")
	fs.Parse(args[1:])

	switch args[0] {
	case "list":
		reports, err := a.reports.GetAll(ctx)
		if err != nil {
			return err
		}
		return printJSON(reports)
	case "generate":
		report, err := a.reports.Generate(ctx, &services.ReportInput{
			ReportType: domain.ReportType(*reportType),
			FileFormat: domain.FileFormat(*format),
		})
		if err != nil {
			return err
		}
		return printJSON(report)
	case "status":
		report, err := a.reports.Status(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(report)
	case "download":
		data, err := a.reports.Download(ctx, *id)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			return err
		}
		log.Printf("wrote %d bytes to %s", len(data), *out)
		return nil
	default:
		return fmt.Errorf("unknown reports subcommand %q", args[0])
	}
}

func (a *app) runDashboard(ctx context.Context) error {
	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	return printJSON(stats)
}

func (a *app) runRisk(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("risk", flag.ExitOnError)
	member := fs.Int64("member", 0, "member id")
	fs.Parse(args)

	assessment, err := a.fraud.AssessMemberRisk(ctx, *member)
	if err != nil {
		return err
	}
	return printJSON(assessment)
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
