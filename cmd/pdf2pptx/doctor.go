package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/alnah/go-pdf2pptx/internal/hints"
	"github.com/alnah/go-pdf2pptx/internal/raster"
)

// doctorProbeTimeout bounds each backend render check.
const doctorProbeTimeout = 30 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Fitz     backendInfo `json:"fitz"`
	Poppler  backendInfo `json:"poppler"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// backendInfo holds the result of probing one rasterizer.
type backendInfo struct {
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Error     string `json:"error,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	Backend       string `json:"pdf2pptx_backend,omitempty"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// doctorChecks are the probes runDoctor uses. Tests replace them.
type doctorChecks struct {
	fitz     raster.Opener
	poppler  raster.Opener
	lookPath func(string) (string, error)
	tempDir  string
}

func defaultDoctorChecks() doctorChecks {
	return doctorChecks{
		fitz:     &raster.FitzOpener{},
		poppler:  &raster.PopplerOpener{},
		lookPath: exec.LookPath,
		tempDir:  os.TempDir(),
	}
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	return runDoctorWithChecks(args, env, defaultDoctorChecks())
}

func runDoctorWithChecks(args []string, env *Environment, checks doctorChecks) int {
	jsonOutput := false
	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOutput = true
		case "-h", "--help":
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		default:
			fmt.Fprintf(env.Stderr, "unknown flag: %s\n\n", arg)
			printDoctorUsage(env.Stderr)
			return ExitUsage
		}
	}

	result := runDoctor(checks)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(checks doctorChecks) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			Backend: os.Getenv(envPrefix + "BACKEND"),
		},
	}

	checkFitz(result, checks)
	checkPoppler(result, checks)
	checkBackends(result)
	checkEnvironment(result)
	checkSystem(result, checks)

	// Determine final status
	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkFitz renders a probe page with MuPDF.
func checkFitz(result *doctorResult, checks doctorChecks) {
	if err := probe(checks.fitz, checks.tempDir); err != nil {
		result.Fitz.Error = err.Error()
		return
	}
	result.Fitz.Available = true
}

// checkPoppler locates the poppler tools and renders a probe page.
func checkPoppler(result *doctorResult, checks doctorChecks) {
	path, err := checks.lookPath("pdftoppm")
	if err != nil {
		result.Poppler.Error = "pdftoppm not found in PATH"
		return
	}
	result.Poppler.Path = path

	if err := probe(checks.poppler, checks.tempDir); err != nil {
		result.Poppler.Error = err.Error()
		return
	}
	result.Poppler.Available = true
}

func probe(o raster.Opener, dir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), doctorProbeTimeout)
	defer cancel()

	size, err := raster.Probe(ctx, o, dir)
	if err != nil {
		return err
	}
	if size.X == 0 || size.Y == 0 {
		return errors.New("empty probe image")
	}
	return nil
}

// checkBackends reports an error when nothing can render, and warnings
// when the configured backend is not the one that works.
func checkBackends(result *doctorResult) {
	switch {
	case !result.Fitz.Available && !result.Poppler.Available:
		result.Errors = append(result.Errors,
			"No rendering backend works. Install poppler-utils or rebuild with MuPDF")
	case !result.Fitz.Available:
		result.Warnings = append(result.Warnings,
			"MuPDF unavailable. Use --backend poppler")
	case !result.Poppler.Available:
		result.Warnings = append(result.Warnings,
			"poppler unavailable. --backend poppler will fail")
	}

	if result.Env.Backend == raster.BackendPoppler && !result.Poppler.Available {
		result.Errors = append(result.Errors,
			envPrefix+"BACKEND=poppler but poppler is unavailable")
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()
	result.Env.CI = hints.InCI()
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	// Explicit override (highest priority)
	if os.Getenv(envPrefix+"CONTAINER") == "1" {
		return true, envPrefix + "CONTAINER=1"
	}
	// Docker
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult, checks doctorChecks) {
	testFile := filepath.Join(checks.tempDir, "pdf2pptx-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", checks.tempDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "pdf2pptx doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Rendering")
	if r.Fitz.Available {
		fmt.Fprintln(w, "  [OK] MuPDF (fitz): renders")
	} else {
		fmt.Fprintf(w, "  [WARN] MuPDF (fitz): %s\n", r.Fitz.Error)
	}
	if r.Poppler.Available {
		fmt.Fprintf(w, "  [OK] poppler: %s\n", r.Poppler.Path)
	} else {
		fmt.Fprintf(w, "  [WARN] poppler: %s\n", r.Poppler.Error)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
