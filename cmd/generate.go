package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/resume-adapter/pkg/config"
	"github.com/nikogura/resume-adapter/pkg/jd"
	"github.com/nikogura/resume-adapter/pkg/llm"
	"github.com/nikogura/resume-adapter/pkg/profile"
	"github.com/nikogura/resume-adapter/pkg/renderer"
	"github.com/nikogura/resume-adapter/pkg/resume"
	"github.com/nikogura/resume-adapter/pkg/schema"
)

//nolint:gochecknoglobals // Cobra boilerplate
var profilePath string

//nolint:gochecknoglobals // Cobra boilerplate
var jobPath string

//nolint:gochecknoglobals // Cobra boilerplate
var outputPath string

//nolint:gochecknoglobals // Cobra boilerplate
var templateName string

//nolint:gochecknoglobals // Cobra boilerplate
var backendName string

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume PDF",
	Long: `Generate a tailored resume PDF from a profile file and a job description.

The profile is YAML or JSON (chosen by file extension). The job description is
plain text, given as a file path or an http(s) URL.

Example:
  resume-adapter generate -p profile.yaml -j jd.txt -o resume.pdf
  resume-adapter generate -p profile.json -j https://example.com/jobs/123 -o resume.pdf --template compact
  resume-adapter generate -p profile.yaml -j jd.txt -o resume.pdf --backend ollama`,
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "Path to profile YAML/JSON file")
	generateCmd.Flags().StringVarP(&jobPath, "job", "j", "", "Path or URL of the job description")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path for the generated PDF")
	generateCmd.Flags().StringVar(&templateName, "template", "", "Template name (default from config)")
	generateCmd.Flags().StringVar(&backendName, "backend", "", "Completion backend: openai or ollama (default from config)")
	_ = generateCmd.MarkFlagRequired("profile")
	_ = generateCmd.MarkFlagRequired("job")
	_ = generateCmd.MarkFlagRequired("output")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	// No deadline on the run: the completion call may block as long as the
	// backend does. Bound it externally if needed.
	ctx := context.Background()

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	backend := backendName
	if backend == "" {
		backend = cfg.Backend
	}
	err = cfg.ValidateBackend(backend)
	if err != nil {
		return err
	}

	tmplName := templateName
	if tmplName == "" {
		tmplName = cfg.Defaults.Template
	}

	var userProfile map[string]interface{}
	var jobDescription string
	var def schema.Definition
	userProfile, jobDescription, def, err = loadInputs(ctx, cfg, tmplName)
	if err != nil {
		return err
	}

	res := tailorOrFallback(ctx, cfg, backend, userProfile, jobDescription, def)

	err = renderOutput(ctx, cfg, tmplName, res)

	return err
}

// loadInputs reads the profile, the job description, and the Output Schema
// for the chosen template. A schema lookup miss is fatal here, before any
// network call is made.
func loadInputs(ctx context.Context, cfg config.Config, tmplName string) (userProfile map[string]interface{}, jobDescription string, def schema.Definition, err error) {
	if getVerbose() {
		fmt.Printf("Loading profile from %s\n", profilePath)
	}
	userProfile, err = profile.Load(profilePath)
	if err != nil {
		return userProfile, jobDescription, def, err
	}

	if getVerbose() {
		fmt.Printf("Loading job description from %s\n", jobPath)
	}
	jobDescription, err = jd.Fetch(ctx, jobPath)
	if err != nil {
		return userProfile, jobDescription, def, err
	}

	var table schema.Table
	table, err = schema.Load(cfg.SchemasLocation)
	if err != nil {
		return userProfile, jobDescription, def, err
	}

	def, err = table.Lookup(tmplName)
	if err != nil {
		return userProfile, jobDescription, def, err
	}

	return userProfile, jobDescription, def, err
}

// tailorOrFallback runs the model tailoring pipeline. Tailoring failures are
// absorbed: the run proceeds with the reshaped original profile.
func tailorOrFallback(ctx context.Context, cfg config.Config, backend string, userProfile map[string]interface{}, jobDescription string, def schema.Definition) (res resume.Resume) {
	completer := newCompleter(cfg, backend)

	var tailorSpinner *spinner
	if !getVerbose() {
		tailorSpinner = newSpinner("Tailoring resume...")
		tailorSpinner.start()
	} else {
		fmt.Printf("Tailoring resume with %s backend...\n", backend)
	}

	res, tailored, cause := llm.TailorResume(ctx, completer, userProfile, jobDescription, def)

	if tailorSpinner != nil {
		tailorSpinner.stopSpinner()
	}

	if !tailored {
		fmt.Printf("Warning: tailoring failed, using original profile: %v\n", cause)
		return res
	}

	if !getVerbose() {
		fmt.Println("✓ Tailoring complete")
	}

	return res
}

// renderOutput fills the HTML template and converts it to PDF. A missing
// template file aborts the run; a PDF conversion failure degrades to an HTML
// artifact next to the requested output path.
func renderOutput(ctx context.Context, cfg config.Config, tmplName string, res resume.Resume) (err error) {
	if getVerbose() {
		fmt.Printf("Rendering template %q\n", tmplName)
	}

	var html string
	html, err = renderer.RenderHTML(cfg.TemplatesDir, tmplName, res)
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Println("Converting to PDF...")
	}

	err = renderer.WritePDF(ctx, html, outputPath, cfg.ChromePath)
	if err != nil {
		htmlPath := renderer.HTMLFallbackPath(outputPath)
		fmt.Printf("Warning: PDF conversion failed: %v\n", err)

		err = renderer.WriteHTML(html, htmlPath)
		if err != nil {
			err = errors.Wrap(err, "failed to write HTML fallback")
			return err
		}

		fmt.Printf("Saved as HTML instead: %s\n", htmlPath)
		return err
	}

	fmt.Printf("Resume generated successfully: %s\n", outputPath)

	return err
}

// newCompleter selects the completion backend. The backend name was already
// validated at startup.
func newCompleter(cfg config.Config, backend string) (completer llm.Completer) {
	if backend == config.BackendOllama {
		completer = llm.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel)
		return completer
	}
	completer = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	return completer
}

// spinner provides a simple text-based progress indicator.
type spinner struct {
	message string
	stop    chan bool
	done    chan bool
	mu      sync.Mutex
	active  bool
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message: message,
		stop:    make(chan bool),
		done:    make(chan bool),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		chars := []string{"|", "/", "-", "\\"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Printf("%s ", s.message)
		for {
			select {
			case <-s.stop:
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.message)+2))
				s.done <- true
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", s.message, chars[i%len(chars)])
				i++
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- true
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}
