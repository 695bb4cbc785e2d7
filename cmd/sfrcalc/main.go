package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/nlebedev/sfrcalc/internal/config"
	"github.com/nlebedev/sfrcalc/internal/crit"
	"github.com/nlebedev/sfrcalc/internal/diffusion"
	"github.com/nlebedev/sfrcalc/internal/export"
	"github.com/nlebedev/sfrcalc/internal/sens"
	"github.com/nlebedev/sfrcalc/internal/storage"
	"github.com/nlebedev/sfrcalc/internal/sweep"
	"github.com/nlebedev/sfrcalc/internal/thermal"
	"github.com/nlebedev/sfrcalc/internal/tui"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

var (
	dataDir    string
	configFile string
	preset     string

	enrichment   float64
	diameter     float64
	height       float64
	elementOD    float64
	pitch        float64
	fuelDensity  float64
	extrapolated bool

	targetK float64
	relStep float64
	dimStep float64

	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	sweepLabel  string

	power     float64
	inletTemp float64
	velocity  float64

	svgWidth  int
	svgHeight int
	svgOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sfrcalc",
		Short: "fast reactor neutronics and design calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(config.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".sfrcalc", "data directory")

	keffCmd := &cobra.Command{
		Use:   "keff",
		Short: "compute the multiplication factor",
		RunE:  runKeff,
	}
	addDesignFlags(keffCmd)

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "find the enrichment for a target k_eff",
		RunE:  runSearch,
	}
	addDesignFlags(searchCmd)
	searchCmd.Flags().Float64Var(&targetK, "target", config.DefaultTargetKEff, "target k_eff")

	sensCmd := &cobra.Command{
		Use:   "sens",
		Short: "enrichment and dimension sensitivities",
		RunE:  runSens,
	}
	addDesignFlags(sensCmd)
	sensCmd.Flags().Float64Var(&relStep, "step", 0.01, "relative enrichment step")
	sensCmd.Flags().Float64Var(&dimStep, "dim-step", 0.5, "dimension step (cm)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep k_eff over an enrichment range",
		RunE:  runSweep,
	}
	addDesignFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.05, "first enrichment")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.95, "last enrichment")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 46, "number of points")
	sweepCmd.Flags().StringVar(&sweepLabel, "label", "sweep", "run label")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "show the group flux spectrum",
		RunE:  runSpectrum,
	}
	addDesignFlags(spectrumCmd)

	thermalCmd := &cobra.Command{
		Use:   "thermal",
		Short: "hot-channel temperatures and power figures",
		RunE:  runThermal,
	}
	addDesignFlags(thermalCmd)
	thermalCmd.Flags().Float64Var(&power, "power", config.DefaultPower, "thermal power (W)")
	thermalCmd.Flags().Float64Var(&inletTemp, "inlet", config.DefaultInletTemp, "coolant inlet temperature (K)")
	thermalCmd.Flags().Float64Var(&velocity, "velocity", config.DefaultVelocity, "coolant velocity (cm/s)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive design explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addDesignFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweep runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export sweep points to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a stored sweep as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available design presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(keffCmd, searchCmd, sensCmd, sweepCmd, spectrumCmd, thermalCmd,
		liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addDesignFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "design file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset design")
	cmd.Flags().Float64VarP(&enrichment, "enrichment", "x", config.DefaultEnrichment, "U-235 enrichment fraction")
	cmd.Flags().Float64Var(&diameter, "diameter", 100.0, "core diameter (cm)")
	cmd.Flags().Float64Var(&height, "height", 50.0, "active height (cm)")
	cmd.Flags().Float64Var(&elementOD, "od", 0.90, "fuel element outer diameter (cm)")
	cmd.Flags().Float64Var(&pitch, "pitch", 1.4, "pitch-to-diameter ratio")
	cmd.Flags().Float64Var(&fuelDensity, "density", config.DefaultFuelDensity, "fuel density (g/cm3)")
	cmd.Flags().BoolVar(&extrapolated, "extrapolated", false, "use extrapolated dimensions for buckling")
}

// buildConfig resolves the design: preset, then config file, then any
// flags the user actually set.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("enrichment") {
		cfg.Fuel.Enrichment = enrichment
	}
	if f.Changed("diameter") {
		cfg.Geometry.CoreDiameter = diameter
	}
	if f.Changed("height") {
		cfg.Geometry.ActiveHeight = height
	}
	if f.Changed("od") {
		cfg.Geometry.ElementOD = elementOD
	}
	if f.Changed("pitch") {
		cfg.Geometry.PitchRatio = pitch
	}
	if f.Changed("density") {
		cfg.Fuel.Density = fuelDensity
	}
	if f.Changed("extrapolated") {
		cfg.UseExtrapolated = extrapolated
	}
	if f.Changed("target") {
		cfg.Target.KEff = targetK
	}
	if f.Changed("power") {
		cfg.Thermal.Power = power
	}
	if f.Changed("inlet") {
		cfg.Thermal.InletTemp = inletTemp
	}
	if f.Changed("velocity") {
		cfg.Thermal.CoolantVelocity = velocity
	}
	return cfg, nil
}

func runKeff(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	core := cfg.Core()
	sol, err := core.Solve(cfg.Fuel.Enrichment)
	if err != nil {
		return err
	}

	geom := core.Geometry
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "enrichment\t%.4f\n", cfg.Fuel.Enrichment)
	fmt.Fprintf(w, "k_eff\t%.5f\n", sol.KEff)
	fmt.Fprintf(w, "buckling\t%.6e cm^-2\n", sol.Buckling)
	fmt.Fprintf(w, "elements\t%d\n", geom.ElementCount())
	fmt.Fprintf(w, "fuel loading\t%.1f kg\n", thermal.FuelLoading(geom, cfg.Fuel.Density))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	return printSpectrum(sol, core.Library)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	core := cfg.Core()
	x, err := crit.FindCritical(core, crit.DefaultSearch(cfg.Target.KEff))
	if err != nil {
		return err
	}

	k, err := core.KEff(x)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "target k_eff\t%.5f\n", cfg.Target.KEff)
	fmt.Fprintf(w, "enrichment\t%.6f\n", x)
	fmt.Fprintf(w, "achieved k_eff\t%.8f\n", k)
	return w.Flush()
}

func runSens(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	core := cfg.Core()
	x := cfg.Fuel.Enrichment

	k, err := core.KEff(x)
	if err != nil {
		return err
	}
	dEnr, err := sens.Enrichment(core, x, relStep)
	if err != nil {
		return err
	}
	dDim, err := sens.Dimensions(core, x, dimStep)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "enrichment\t%.4f\n", x)
	fmt.Fprintf(w, "k_eff\t%.5f\n", k)
	fmt.Fprintf(w, "dk/k per %.1f%% enrichment\t%+.6f\n", relStep*100, dEnr)
	fmt.Fprintf(w, "dk/k per %+.2f cm D,H\t%+.6f\n", dimStep, dDim)
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	core := cfg.Core()
	enrichments := sweep.Range(sweepFrom, sweepTo, sweepPoints)

	start := time.Now()
	points, err := sweep.Run(context.Background(), core, enrichments)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	kMin, kMax := points[0].KEff, points[0].KEff
	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.KEff
		if p.KEff < kMin {
			kMin = p.KEff
		}
		if p.KEff > kMax {
			kMax = p.KEff
		}
	}

	summary := map[string]float64{"k_min": kMin, "k_max": kMax}
	if xc, err := crit.FindCritical(core, crit.DefaultSearch(1.0)); err == nil {
		summary["critical_enrichment"] = xc
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sweepLabel, core.Geometry, summary, points)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("k_eff over enrichment %.2f..%.2f", sweepFrom, sweepTo)),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("points: %d in %v\n", len(points), elapsed)
	fmt.Printf("k_eff range: %.5f .. %.5f\n", kMin, kMax)
	if xc, ok := summary["critical_enrichment"]; ok {
		fmt.Printf("critical enrichment: %.6f\n", xc)
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	core := cfg.Core()
	sol, err := core.Solve(cfg.Fuel.Enrichment)
	if err != nil {
		return err
	}

	fmt.Printf("enrichment %.4f  k_eff %.5f\n\n", cfg.Fuel.Enrichment, sol.KEff)
	return printSpectrum(sol, core.Library)
}

func printSpectrum(sol diffusion.Solution, lib xs.Library) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tENERGY (MeV)\tFLUX\tSHARE")

	total := 0.0
	for g := 0; g < xs.Groups; g++ {
		total += sol.Flux[g]
	}
	for g := 0; g < xs.Groups; g++ {
		fmt.Fprintf(w, "%d\t%.5f - %.5f\t%.4f\t%.1f%%\n",
			g+1, lib.Groups.UpperMeV(g), lib.Groups.LowerMeV[g],
			sol.Flux[g], sol.Flux[g]/total*100)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	data := make([]float64, xs.Groups)
	for g := 0; g < xs.Groups; g++ {
		data[g] = sol.Flux[g]
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(48),
		asciigraph.Caption("group flux, fast to slow"),
	))
	return nil
}

func runThermal(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	ch := cfg.Channel()
	geom := ch.Geometry

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "thermal power\t%.1f MW\n", ch.Power/1e6)
	fmt.Fprintf(w, "avg power density\t%.2f W/cm3\n", thermal.AveragePowerDensity(ch.Power, geom))
	fmt.Fprintf(w, "peak power density\t%.2f W/cm3\n", thermal.PeakPowerDensity(ch.Power, ch.PeakingFactor, geom))
	fmt.Fprintf(w, "fuel loading\t%.1f kg\n", thermal.FuelLoading(geom, cfg.Fuel.Density))
	fmt.Fprintf(w, "peak linear power\t%.1f W/cm\n", ch.PeakLinearPower())
	fmt.Fprintf(w, "channel mass flow\t%.1f g/s\n", ch.MassFlow())
	fmt.Fprintf(w, "Reynolds\t%.0f\n", ch.Reynolds())
	fmt.Fprintf(w, "film coefficient\t%.2f W/(cm2 K)\n", ch.FilmCoefficient())
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Z (cm)\tCOOLANT (K)\tCLAD (K)\tFUEL CL (K)")
	for _, p := range ch.Profile(11) {
		fmt.Fprintf(w, "%+.1f\t%.1f\t%.1f\t%.1f\n", p.Z, p.Coolant, p.CladSurface, p.FuelCenter)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tPOINTS\tD (cm)\tH (cm)")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%.1f\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Points,
			run.CoreDiameter,
			run.ActiveHeight,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("core: D=%.1f cm  H=%.1f cm\n\n", meta.CoreDiameter, meta.ActiveHeight)

	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.KEff
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("k_eff, enrichment %.3f..%.3f",
			points[0].Enrichment, points[len(points)-1].Enrichment)),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"enrichment", "k_eff"}
	for g := 0; g < xs.Groups; g++ {
		header = append(header, fmt.Sprintf("phi%d", g))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Enrichment, 'g', -1, 64),
			strconv.FormatFloat(p.KEff, 'g', -1, 64),
		}
		for g := 0; g < xs.Groups; g++ {
			row = append(row, strconv.FormatFloat(p.Flux[g], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return fmt.Errorf("not enough data to render")
	}

	svg := export.SweepToSVG(points, svgWidth, svgHeight, "#00ff00")
	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}
