// Command uprail is a thin CLI over the uprail client: it fetches one
// resource and prints the API's JSON to stdout.
//
// Usage:
//
//	uprail [flags] <routes|locations|shipments|cases|waybills|equipment> [id]
//
// Credentials come from ACCESS_ID / SECRET_KEY in <env-dir>/.env or the
// process environment.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	uprail "github.com/jkp717/uprail-go"
	"github.com/jkp717/uprail-go/model"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		envDir    = flag.String("env-dir", "", "directory holding .env and .token (default: CWD)")
		forceNew  = flag.Bool("force-new-token", false, "skip the stored token and exchange a fresh one")
		verbose   = flag.Bool("v", false, "enable debug logging")
		splc      = flag.String("splc", "", "locations: filter by SPLC")
		origin    = flag.String("origin", "", "routes: origin location id (required)")
		dest      = flag.String("destination", "", "routes: destination location id (required)")
		equipment = flag.String("equipment", "", "shipments/cases/waybills: comma-separated equipment ids")
		shipments = flag.String("shipments", "", "waybills: comma-separated shipment ids")
		phases    = flag.String("phases", "", "shipments: comma-separated phase codes (e.g. ENROUTE)")
		statuses  = flag.String("statuses", "", "cases: comma-separated status codes (e.g. OPEN)")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() < 1 {
		return fmt.Errorf("usage: uprail [flags] <routes|locations|shipments|cases|waybills|equipment> [id]")
	}
	resource := flag.Arg(0)
	id := flag.Arg(1)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []uprail.Option{uprail.WithRawOutput()}
	if *envDir != "" {
		opts = append(opts, uprail.WithEnvDir(*envDir))
	}
	if *forceNew {
		opts = append(opts, uprail.WithForceNewToken())
	}

	client, err := uprail.NewClient(opts...)
	if err != nil {
		return err
	}

	var resp *uprail.Response
	switch resource {
	case "routes":
		if id != "" {
			_, resp, err = client.GetRouteByID(ctx, id)
			break
		}
		if *origin == "" || *dest == "" {
			return fmt.Errorf("routes: -origin and -destination are required")
		}
		_, resp, err = client.GetRoutes(ctx, *origin, *dest, nil)
	case "locations":
		if id != "" {
			_, resp, err = client.GetLocationByID(ctx, id)
			break
		}
		_, resp, err = client.GetLocations(ctx, &uprail.LocationsOptions{SPLC: *splc})
	case "shipments":
		if id != "" {
			_, resp, err = client.GetShipmentByID(ctx, id)
			break
		}
		_, resp, err = client.GetShipments(ctx, &uprail.ShipmentsOptions{
			EquipmentIDs: splitList(*equipment),
			PhaseCodes:   phaseCodes(*phases),
		})
	case "cases":
		if id != "" {
			_, resp, err = client.GetCaseByID(ctx, id)
			break
		}
		_, resp, err = client.GetCases(ctx, &uprail.CasesOptions{
			EquipmentIDs: splitList(*equipment),
			StatusCodes:  caseStatuses(*statuses),
		})
	case "waybills":
		if id != "" {
			_, resp, err = client.GetWaybillByID(ctx, id)
			break
		}
		_, resp, err = client.GetWaybills(ctx, &uprail.WaybillsOptions{
			ShipmentIDs:  splitList(*shipments),
			EquipmentIDs: splitList(*equipment),
		})
	case "equipment":
		if id == "" {
			return fmt.Errorf("equipment: an equipment id argument is required")
		}
		_, resp, err = client.GetEquipmentByID(ctx, id)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, resp.Raw, "", "  "); err != nil {
		// Print unindented rather than failing on odd but valid output.
		out.Reset()
		out.Write(resp.Raw)
	}
	fmt.Println(out.String())
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func phaseCodes(s string) []model.PhaseCode {
	var out []model.PhaseCode
	for _, p := range splitList(s) {
		out = append(out, model.PhaseCode(p))
	}
	return out
}

func caseStatuses(s string) []model.CaseStatus {
	var out []model.CaseStatus
	for _, p := range splitList(s) {
		out = append(out, model.CaseStatus(p))
	}
	return out
}
