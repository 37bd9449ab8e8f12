package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pdf2pptx"
	"github.com/alnah/go-pdf2pptx/internal/mdnotes"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

var supportedShells = []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma-separated
}

// takesValue reports whether the flag consumes the next word.
func (f flagDef) takesValue() bool { return f.Type != flagBool }

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed argument words
	FilePattern string   // glob for file arguments, comma-separated
}

// completionMeta holds completion hints for flags. Names, types and
// descriptions come from the FlagSets.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
func flagCompletionMeta() map[string]completionMeta {
	return map[string]completionMeta{
		// Enum flags
		"backend":    {Values: []string{pdf2pptx.BackendFitz, pdf2pptx.BackendPoppler}},
		"format":     {Values: []string{pdf2pptx.FormatPNG, pdf2pptx.FormatJPEG}},
		"code-style": {Values: mdnotes.StyleNames()},

		// File flags
		"config":     {FileGlob: "*.yaml,*.yml"},
		"output":     {FileGlob: "*.pptx"},
		"notes-pptx": {FileGlob: "*.pptx"},
		"notes-md":   {FileGlob: "*.md,*.markdown"},

		// Directory flags
		"template-dir": {IsDir: true},
	}
}

// extractFlagsFromFlagSet lists the flags of fs, enriched with
// flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert PDF files to PowerPoint decks",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			FilePattern: "*.pdf",
		},
		{
			Name:        "info",
			Desc:        "Show page count and page sizes of a PDF",
			Flags:       extractFlagsFromFlagSet(newInfoFlagSet(&infoFlags{})),
			FilePattern: "*.pdf",
		},
		{
			Name:  "doctor",
			Desc:  "Check rendering backends and environment",
			Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "print JSON"}},
		},
		{
			Name: "version",
			Desc: "Show version information",
		},
		{
			Name: "help",
			Desc: "Show help for a command",
			Args: commands,
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: supportedShells,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var b strings.Builder
	cmds := getCommands()

	switch shell {
	case ShellBash:
		writeBash(&b, cmds)
	case ShellZsh:
		writeZsh(&b, cmds)
	case ShellFish:
		writeFish(&b, cmds)
	case ShellPowerShell:
		writePowerShell(&b, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, strings.Join(supportedShells, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) int {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return ExitSuccess
	}
	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}
	return ExitSuccess
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2pptx completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(pdf2pptx completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(pdf2pptx completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    pdf2pptx completion fish > ~/.config/fish/completions/pdf2pptx.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    pdf2pptx completion powershell | Out-String | Invoke-Expression")
}

// globs splits a comma-separated glob list.
func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

// commandNames returns the names of cmds in order.
func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// flagWords returns every spelling of the flags, long first.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashFiles(pattern string) string {
	var parts []string
	for _, g := range globs(pattern) {
		parts = append(parts, fmt.Sprintf(`$(compgen -f -X '!%s' -- "$cur")`, g))
	}
	parts = append(parts, `$(compgen -d -- "$cur")`)
	return "COMPREPLY=( " + strings.Join(parts, " ") + " )"
}

func writeBash(b *strings.Builder, cmds []commandDef) {
	names := strings.Join(commandNames(cmds), " ")

	b.WriteString("# bash completion for pdf2pptx\n")
	b.WriteString("_pdf2pptx_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString(`    cur="${COMP_WORDS[COMP_CWORD]}"` + "\n")
	b.WriteString(`    prev="${COMP_WORDS[COMP_CWORD-1]}"` + "\n")
	b.WriteString("\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 && \"$cur\" != -* ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") $(compgen -f -X '!*.pdf' -- \"$cur\") )\n", names)
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("\n")
	b.WriteString(`    cmd="${COMP_WORDS[1]}"` + "\n")
	b.WriteString("    case \"$cmd\" in\n")
	fmt.Fprintf(b, "        %s) ;;\n", strings.Join(commandNames(cmds), "|"))
	b.WriteString("        *) cmd=convert ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "        %s)\n", c.Name)

		var valued []flagDef
		for _, f := range c.Flags {
			if f.takesValue() {
				valued = append(valued, f)
			}
		}
		if len(valued) > 0 {
			b.WriteString("            case \"$prev\" in\n")
			for _, f := range valued {
				pat := "--" + f.Long
				if f.Short != "" {
					pat += "|-" + f.Short
				}
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(b, "                %s) COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ); return ;;\n", pat, strings.Join(f.Values, " "))
				case flagFile:
					fmt.Fprintf(b, "                %s) %s; return ;;\n", pat, bashFiles(f.FileGlob))
				case flagDir:
					fmt.Fprintf(b, "                %s) COMPREPLY=( $(compgen -d -- \"$cur\") ); return ;;\n", pat)
				default:
					fmt.Fprintf(b, "                %s) return ;;\n", pat)
				}
			}
			b.WriteString("            esac\n")
		}

		if len(c.Flags) > 0 {
			b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(b, "                COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(flagWords(c.Flags), " "))
			b.WriteString("                return\n")
			b.WriteString("            fi\n")
		}
		switch {
		case c.FilePattern != "":
			fmt.Fprintf(b, "            %s\n", bashFiles(c.FilePattern))
		case len(c.Args) > 0:
			fmt.Fprintf(b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(c.Args, " "))
		}
		b.WriteString("            ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _pdf2pptx_completions pdf2pptx\n")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

var zshEscaper = strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`)

func zshGlob(pattern string) string {
	g := globs(pattern)
	if len(g) == 1 {
		return g[0]
	}
	return "(" + strings.Join(g, "|") + ")"
}

func zshFlagSpec(f flagDef) string {
	var spec string
	if f.Short != "" {
		spec = fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'", f.Short, f.Long, f.Short, f.Long)
	} else {
		spec = "'--" + f.Long
	}
	spec += "[" + zshEscaper.Replace(f.Desc) + "]"

	switch f.Type {
	case flagBool:
	case flagEnum:
		spec += ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		spec += `:file:_files -g "` + zshGlob(f.FileGlob) + `"`
	case flagDir:
		spec += ":directory:_files -/"
	default:
		spec += ":value: "
	}
	return spec + "'"
}

func writeZsh(b *strings.Builder, cmds []commandDef) {
	b.WriteString("#compdef pdf2pptx\n\n")

	for _, c := range cmds {
		var specs []string
		for _, f := range c.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		switch {
		case c.FilePattern != "":
			specs = append(specs, fmt.Sprintf(`'*:file:_files -g "%s"'`, zshGlob(c.FilePattern)))
		case len(c.Args) > 0:
			specs = append(specs, fmt.Sprintf("'1:argument:(%s)'", strings.Join(c.Args, " ")))
		}

		fmt.Fprintf(b, "_pdf2pptx_%s() {\n", c.Name)
		if len(specs) == 0 {
			b.WriteString("    _message 'no more arguments'\n")
		} else {
			b.WriteString("    _arguments -s \\\n        ")
			b.WriteString(strings.Join(specs, " \\\n        "))
			b.WriteString("\n")
		}
		b.WriteString("}\n\n")
	}

	b.WriteString("_pdf2pptx() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, strings.ReplaceAll(c.Desc, "'", `'\''`))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe -t commands 'pdf2pptx command' commands\n")
	b.WriteString("        _files -g \"*.pdf\"\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case $words[2] in\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        %s) shift words; (( CURRENT-- )); _pdf2pptx_%s ;;\n", c.Name, c.Name)
	}
	b.WriteString("        *) _pdf2pptx_convert ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _pdf2pptx pdf2pptx\n")
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func fishFiles(pattern string) string {
	var sfx []string
	for _, g := range globs(pattern) {
		sfx = append(sfx, strings.TrimPrefix(g, "*"))
	}
	return "'(__fish_complete_suffix " + strings.Join(sfx, " ") + ")'"
}

func writeFish(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# fish completion for pdf2pptx\n\n")
	b.WriteString("function __fish_pdf2pptx_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_pdf2pptx_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; or return 1\n")
	b.WriteString("    test \"$cmd[2]\" = $argv[1]; and return 0\n")
	b.WriteString("    # pdf2pptx in.pdf [flags] is a conversion\n")
	b.WriteString("    test $argv[1] = convert; and string match -qi -- '*.pdf' $cmd[2]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c pdf2pptx -f\n")

	for _, c := range cmds {
		fmt.Fprintf(b, "complete -c pdf2pptx -n __fish_pdf2pptx_needs_command -a %s -d '%s'\n", c.Name, fishEscaper.Replace(c.Desc))
	}
	b.WriteString("complete -c pdf2pptx -n __fish_pdf2pptx_needs_command -k -a '(__fish_complete_suffix .pdf)'\n")

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_pdf2pptx_using_command %s'", c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c pdf2pptx -n %s", cond)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				line += " -r -a " + fishFiles(f.FileGlob)
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -x"
			}
			line += " -d '" + fishEscaper.Replace(f.Desc) + "'"
			b.WriteString(line + "\n")
		}
		switch {
		case c.FilePattern != "":
			fmt.Fprintf(b, "complete -c pdf2pptx -n %s -a %s\n", cond, fishFiles(c.FilePattern))
		case len(c.Args) > 0:
			fmt.Fprintf(b, "complete -c pdf2pptx -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func writePowerShell(b *strings.Builder, cmds []commandDef) {
	b.WriteString("# PowerShell completion for pdf2pptx\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName pdf2pptx -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(b, "        %s = %s\n", psQuote(c.Name), psQuote(c.Desc))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 {
			continue
		}
		fmt.Fprintf(b, "        %s = @(\n", psQuote(c.Name))
		for _, f := range c.Flags {
			fmt.Fprintf(b, "            @{ Name = %s; Desc = %s }\n", psQuote("--"+f.Long), psQuote(f.Desc))
		}
		b.WriteString("        )\n")
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $values = @{\n")
	var seen []string
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Type != flagEnum || slices.Contains(seen, f.Long) {
				continue
			}
			seen = append(seen, f.Long)
			quoted := make([]string, len(f.Values))
			for i, v := range f.Values {
				quoted[i] = psQuote(v)
			}
			fmt.Fprintf(b, "        %s = @(%s)\n", psQuote("--"+f.Long), strings.Join(quoted, ", "))
		}
	}
	for _, c := range cmds {
		if len(c.Args) == 0 {
			continue
		}
		quoted := make([]string, len(c.Args))
		for i, v := range c.Args {
			quoted[i] = psQuote(v)
		}
		fmt.Fprintf(b, "        %s = @(%s)\n", psQuote(c.Name), strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")

	b.WriteString(`    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    if ($wordToComplete) {
        $words = @($words | Select-Object -SkipLast 1)
    }

    if ($words.Count -le 1) {
        $commands.GetEnumerator() | Where-Object { $_.Key -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)
        }
        return
    }

    $command = $words[1]
    if (-not $commands.Contains($command)) {
        $command = 'convert'
    }

    $prev = $words[-1]
    if ($values.ContainsKey($prev)) {
        $values[$prev] | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    if ($wordToComplete -like '-*' -and $flags.ContainsKey($command)) {
        $flags[$command] | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Desc)
        }
    }
}
`)
}
