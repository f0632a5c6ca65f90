package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// IDGetter is implemented by results that have a natural identifier,
// printed alone in quiet mode
type IDGetter interface {
	GetID() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(IDGetter); ok {
			_, err := fmt.Fprintln(f.out(), idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return f.encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.err(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.err(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Printf writes human-readable output; it is silent in JSON and quiet modes
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Fprintf(f.out(), format, args...)
}

// Println writes one raw line regardless of mode
func (f *OutputFormatter) Println(s string) {
	fmt.Fprintln(f.out(), s)
}

func (f *OutputFormatter) encode(v any) error {
	return json.NewEncoder(f.out()).Encode(v)
}

// FormatterFromFlags builds a formatter from the --json and --quiet flags
func FormatterFromFlags(flags interface {
	GetBool(name string) (bool, error)
}, out, errOut io.Writer) *OutputFormatter {
	jsonOutput, _ := flags.GetBool("json")
	quietMode, _ := flags.GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: out, Err: errOut}
}
