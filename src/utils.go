package src

import (
	"encoding/json"
	"fmt"
	"io"

	"polyhello/src/ai"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// RenderResult writes r to w as two-space indented JSON, or YAML when format is "yaml".
func RenderResult(w io.Writer, r ai.HelloResult, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result as yaml: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result as json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

func Yellow() *color.Color {
	return color.New(color.FgYellow)
}

func Green() *color.Color {
	return color.New(color.FgGreen)
}

func Faint() *color.Color {
	return color.New(color.Faint)
}

func PrintBlue(w io.Writer, format string, a ...interface{}) {
	blue := color.New(color.FgBlue).SprintFunc()
	fmt.Fprintln(w, blue(fmt.Sprintf(format, a...)))
}

func PrintInfo(w io.Writer, format string, a ...interface{}) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintln(w, cyan(fmt.Sprintf(format, a...)))
}
