package completions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/faceswap-tools/faceswap/internal/dispatchers"
)

// Generate returns the completion script for shell.
func Generate(shell Shell, bin string, commands []CommandInfo) (string, error) {
	switch shell {
	case ShellBash:
		return GenerateBash(bin, commands), nil
	case ShellZsh:
		return GenerateZsh(bin, commands), nil
	case ShellFish:
		return GenerateFish(bin, commands), nil
	}
	return "", fmt.Errorf("unsupported shell: %s", shell)
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

func funcName(bin string) string {
	return "_" + nonIdent.ReplaceAllString(bin, "_") + "_completions"
}

// commandKey replaces the root name with bin so renamed binaries resolve.
func commandKey(bin string, c CommandInfo) string {
	if len(c.Path) == 0 {
		return bin
	}
	return strings.Join(append([]string{bin}, c.Path[1:]...), " ")
}

// GenerateBash returns a bash completion script.
func GenerateBash(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s bash completion script\n", bin)
	b.WriteString(bashBody(bin, commands))
	fmt.Fprintf(&b, "complete -F %s %s\n", funcName(bin), bin)
	return b.String()
}

// GenerateZsh returns a zsh completion script. It runs the bash function
// through bashcompinit.
func GenerateZsh(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#compdef %s\n", bin)
	fmt.Fprintf(&b, "# %s zsh completion script\n", bin)
	b.WriteString("autoload -U +X bashcompinit && bashcompinit\n")
	b.WriteString(bashBody(bin, commands))
	fmt.Fprintf(&b, "complete -F %s %s\n", funcName(bin), bin)
	return b.String()
}

func bashBody(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s() {\n", funcName(bin))
	b.WriteString("    local cur prev cmd i\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	fmt.Fprintf(&b, "    cmd=%q\n", bin)

	var groups []string
	for _, c := range commands {
		if len(c.Path) > 1 {
			groups = append(groups, fmt.Sprintf("%q", commandKey(bin, c)))
		}
	}
	b.WriteString("    for ((i=1; i<COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"$cmd ${COMP_WORDS[i]}\" in\n")
	if len(groups) > 0 {
		fmt.Fprintf(&b, "            %s) cmd=\"$cmd ${COMP_WORDS[i]}\" ;;\n", strings.Join(groups, "|"))
	}
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")

	b.WriteString("    case \"$cmd:$prev\" in\n")
	for _, c := range commands {
		key := commandKey(bin, c)
		for _, f := range c.Flags {
			if !f.TakesValue {
				continue
			}
			var pats []string
			for _, n := range f.Names {
				pats = append(pats, fmt.Sprintf("%q", key+":"+n))
			}
			fmt.Fprintf(&b, "        %s)\n            %s\n            return ;;\n", strings.Join(pats, "|"), bashValueReply(f))
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range commands {
		words := append([]string(nil), c.Subcommands...)
		for _, f := range c.Flags {
			words = append(words, f.Names...)
		}
		fmt.Fprintf(&b, "        %q) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", commandKey(bin, c), strings.Join(words, " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	return b.String()
}

func bashValueReply(f FlagInfo) string {
	switch {
	case len(f.Choices) > 0:
		return fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(f.Choices, " "))
	case f.Path == dispatchers.PathDir:
		return "COMPREPLY=($(compgen -d -- \"$cur\"))"
	case f.Path == dispatchers.PathFile && len(f.Patterns) > 0:
		parts := []string{"$(compgen -d -- \"$cur\")"}
		for _, p := range f.Patterns {
			parts = append(parts, fmt.Sprintf("$(compgen -f -X '!%s' -- \"$cur\")", p))
		}
		return "COMPREPLY=(" + strings.Join(parts, " ") + ")"
	case f.Path == dispatchers.PathFile:
		return "COMPREPLY=($(compgen -f -- \"$cur\"))"
	default:
		return "COMPREPLY=()"
	}
}

// GenerateFish returns a fish completion script.
func GenerateFish(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s fish completion script\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, c := range commands {
		cond := fishCondition(c)
		for _, sub := range c.Subcommands {
			child := FindCommand(commands, append(append([]string(nil), c.Path...), sub))
			desc := ""
			if child != nil {
				desc = child.Summary
			}
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d %s\n", bin, fishQuote(cond), sub, fishQuote(desc))
		}
		if len(c.Subcommands) > 0 && len(c.Path) > 1 {
			continue
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c %s -n %s%s%s -d %s\n", bin, fishQuote(cond), fishNames(f.Names), fishValue(f), fishQuote(f.Description))
		}
	}
	return b.String()
}

func fishCondition(c CommandInfo) string {
	switch len(c.Path) {
	case 0, 1:
		return "__fish_use_subcommand"
	case 2:
		if len(c.Subcommands) > 0 {
			return fmt.Sprintf("__fish_seen_subcommand_from %s; and not __fish_seen_subcommand_from %s",
				c.Name, strings.Join(c.Subcommands, " "))
		}
		return "__fish_seen_subcommand_from " + c.Name
	default:
		return fmt.Sprintf("__fish_seen_subcommand_from %s; and __fish_seen_subcommand_from %s", c.Path[len(c.Path)-2], c.Name)
	}
}

func fishNames(names []string) string {
	var b strings.Builder
	for _, n := range names {
		switch {
		case strings.HasPrefix(n, "--"):
			b.WriteString(" -l " + n[2:])
		case len(n) == 2:
			b.WriteString(" -s " + n[1:])
		default:
			b.WriteString(" -o " + n[1:])
		}
	}
	return b.String()
}

func fishValue(f FlagInfo) string {
	switch {
	case !f.TakesValue:
		return ""
	case len(f.Choices) > 0:
		return " -r -f -a " + fishQuote(strings.Join(f.Choices, " "))
	case f.Path == dispatchers.PathDir:
		return " -r -f -a '(__fish_complete_directories)'"
	case f.Path == dispatchers.PathFile:
		return " -r -F"
	default:
		return " -r"
	}
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
