package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2pptx <command> [flags] [args]")
	fmt.Fprintln(w, "       pdf2pptx <input.pdf> [output.pptx] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert PDF files to PowerPoint decks")
	fmt.Fprintln(w, "  info       Show page count and page sizes of a PDF")
	fmt.Fprintln(w, "  doctor     Check rendering backends and environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pdf2pptx help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2pptx convert <input> [output] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert PDF files to decks with one full-bleed page image per slide.")
	fmt.Fprintln(w, "Slides are 10in wide with the height of each page's aspect ratio.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     PDF file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "  output    Output deck file; an existing directory or trailing / writes into it")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-document timeout, e.g. 30s, 2m (default none)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "      --skip-first          Drop the first page")
	fmt.Fprintln(w, "      --skip <list>         Drop pages by number, e.g. 2,4 (not with --skip-first)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --dpi <n>             Resolution, 1-1200 (default 200)")
	fmt.Fprintln(w, "      --backend <s>         Rasterizer: fitz, poppler (default fitz)")
	fmt.Fprintln(w, "      --format <s>          Page image format: png, jpeg (default png)")
	fmt.Fprintln(w, "      --jpeg-quality <n>    JPEG quality, 1-100 (default 90)")
	fmt.Fprintln(w, "      --max-width <px>      Downscale wider page images")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Speaker Notes:")
	fmt.Fprintln(w, "      --notes-pptx <path>   Copy notes from a deck, slide i to slide i")
	fmt.Fprintln(w, "      --notes-md <path>     Notes from Markdown, sections split at ---")
	fmt.Fprintln(w, "      --code-style <s>      Chroma style for code blocks (default monokailight)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Deck title (default: PDF file name)")
	fmt.Fprintln(w, "      --author <s>          Deck author")
	fmt.Fprintln(w, "      --subject <s>         Deck subject")
	fmt.Fprintln(w, "      --keywords <s>        Deck keywords")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --template-dir <path> Override theme.xml, slideMaster.xml, ...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printInfoUsage prints usage for the info command.
func printInfoUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2pptx info <input.pdf> [--json | --yaml]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show page count and page sizes without rendering.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2pptx doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check MuPDF and poppler availability and the environment.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "info":
		printInfoUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: pdf2pptx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: pdf2pptx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
