package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"
)

// ErrUnknownShell is returned for a completion shell that is not supported.
var ErrUnknownShell = errors.New("unknown shell")

const bashCompletion = `_{{name}}_bash_autocomplete() {
  if [[ "${COMP_WORDS[0]}" != "source" ]]; then
    local cur opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    if [[ "$cur" == "-"* ]]; then
      opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} ${cur} --generate-bash-completion )
    else
      opts=$( ${COMP_WORDS[@]:0:$COMP_CWORD} --generate-bash-completion )
    fi
    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
  fi
}

complete -o bashdefault -o default -F _{{name}}_bash_autocomplete {{name}}
`

const zshCompletion = `#compdef {{name}}

_{{name}}_zsh_autocomplete() {
  local -a opts
  local cur
  cur=${words[-1]}
  if [[ "$cur" == "-"* ]]; then
    opts=("${(@f)$(${words[@]:0:#words[@]-1} ${cur} --generate-bash-completion)}")
  else
    opts=("${(@f)$(${words[@]:0:#words[@]-1} --generate-bash-completion)}")
  fi

  if [[ "${opts[1]}" != "" ]]; then
    _describe 'values' opts
  else
    _files
  fi
}

compdef _{{name}}_zsh_autocomplete {{name}}
`

// printCompletions writes the completion script for shell to w. An unknown
// shell is reported on w and returned as a cli.ExitCoder.
func printCompletions(app *cli.App, w io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = strings.ReplaceAll(bashCompletion, "{{name}}", app.Name)
	case "zsh":
		script = strings.ReplaceAll(zshCompletion, "{{name}}", app.Name)
	case "fish":
		s, err := app.ToFishCompletion()
		if err != nil {
			return fmt.Errorf("generate fish completion: %w", err)
		}
		script = s
	default:
		fmt.Fprintf(w, "Unknown shell '%s'!\n", shell)
		return cli.Exit(fmt.Errorf("%w %q", ErrUnknownShell, shell), 1)
	}

	_, err := io.WriteString(w, script)
	return err
}
