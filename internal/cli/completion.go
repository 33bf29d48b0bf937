package cli

import (
	"fmt"
)

// CompletionCmd generates shell completions
type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh,fish" help:"Shell type (bash, zsh, fish)"`
}

// Run executes the completion command
func (c *CompletionCmd) Run(globals *Globals) error {
	switch c.Shell {
	case "bash":
		return c.generateBash(globals)
	case "zsh":
		return c.generateZsh(globals)
	case "fish":
		return c.generateFish(globals)
	default:
		return fmt.Errorf("unsupported shell: %s", c.Shell)
	}
}

func (c *CompletionCmd) generateBash(globals *Globals) error {
	script := `# eclman bash completion script
# Add to ~/.bashrc:
#   eval "$(eclman completion bash)"

_eclman_completions() {
    local cur prev words cword
    _init_completion || return

    local commands="open path versions viewers pick obs grav simulators examples config doctor completion version update"
    local global_flags="-f --format -q --quiet --verbose"

    case "${prev}" in
        eclman)
            COMPREPLY=($(compgen -W "${commands} -v" -- "${cur}"))
            return
            ;;
        -f|--format)
            COMPREPLY=($(compgen -W "text ndjson" -- "${cur}"))
            return
            ;;
        -v|--version)
            local versions=$(eclrun --report-versions eclipse 2>/dev/null)
            COMPREPLY=($(compgen -W "${versions}" -- "${cur}"))
            return
            ;;
        obs)
            COMPREPLY=($(compgen -W "validate roundtrip query example" -- "${cur}"))
            return
            ;;
        grav)
            COMPREPLY=($(compgen -W "validate surfaces example" -- "${cur}"))
            return
            ;;
        config)
            COMPREPLY=($(compgen -W "show path generate" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "${cur}"))
            return
            ;;
    esac

    case "${words[1]}" in
        open|path)
            COMPREPLY=($(compgen -W "-v --version ${global_flags}" -- "${cur}"))
            ;;
        versions)
            COMPREPLY=($(compgen -W "--missing ${global_flags}" -- "${cur}"))
            ;;
        obs|grav)
            _filedir 'y?(a)ml'
            ;;
        *)
            COMPREPLY=($(compgen -W "${commands} ${global_flags}" -- "${cur}"))
            ;;
    esac
}

complete -F _eclman_completions eclman
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}

func (c *CompletionCmd) generateZsh(globals *Globals) error {
	script := `#compdef eclman
# eclman zsh completion script
# Add to ~/.zshrc:
#   eval "$(eclman completion zsh)"

_eclman() {
    local -a commands
    commands=(
        'open:Open the simulator manual in a PDF viewer'
        'path:Print the path of the manual for a release'
        'versions:List installed releases and their manuals'
        'viewers:Show which PDF viewers are available'
        'pick:Interactively pick a release and open its manual'
        'obs:Check and query observation fixture files'
        'grav:Check gravity/subsidence map configuration files'
        'simulators:Locate reservoir simulator executables'
        'config:Show or manage configuration'
        'doctor:Check system requirements and configuration'
        'version:Show version information'
        'completion:Generate shell completions'
    )

    local -a global_opts
    global_opts=(
        '-f[Output format]:format:(text ndjson)'
        '--format[Output format]:format:(text ndjson)'
        '-q[Suppress informational output]'
        '--quiet[Suppress informational output]'
        '--verbose[Show debug output]'
    )

    _arguments -C \
        $global_opts \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                open|path)
                    _arguments \
                        '-v[Release version]:version:' \
                        '--version[Release version]:version:' \
                        $global_opts
                    ;;
                obs)
                    _arguments '1:action:(validate roundtrip query example)' '*:file:_files -g "*.y(a|)ml"'
                    ;;
                grav)
                    _arguments '1:action:(validate surfaces example)' '*:file:_files -g "*.y(a|)ml"'
                    ;;
                config)
                    _arguments '1:action:(show path generate)'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

compdef _eclman eclman
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}

func (c *CompletionCmd) generateFish(globals *Globals) error {
	script := `# eclman fish completion script
# Add to ~/.config/fish/completions/eclman.fish

complete -c eclman -f

# Commands
complete -c eclman -n "__fish_use_subcommand" -a "open" -d "Open the simulator manual in a PDF viewer"
complete -c eclman -n "__fish_use_subcommand" -a "path" -d "Print the path of the manual for a release"
complete -c eclman -n "__fish_use_subcommand" -a "versions" -d "List installed releases and their manuals"
complete -c eclman -n "__fish_use_subcommand" -a "viewers" -d "Show which PDF viewers are available"
complete -c eclman -n "__fish_use_subcommand" -a "pick" -d "Interactively pick a release"
complete -c eclman -n "__fish_use_subcommand" -a "obs" -d "Check and query observation fixture files"
complete -c eclman -n "__fish_use_subcommand" -a "grav" -d "Check gravity/subsidence map configuration files"
complete -c eclman -n "__fish_use_subcommand" -a "simulators" -d "Locate reservoir simulator executables"
complete -c eclman -n "__fish_use_subcommand" -a "config" -d "Show or manage configuration"
complete -c eclman -n "__fish_use_subcommand" -a "doctor" -d "Check system requirements and configuration"
complete -c eclman -n "__fish_use_subcommand" -a "version" -d "Show version information"
complete -c eclman -n "__fish_use_subcommand" -a "completion" -d "Generate shell completions"

# Global flags
complete -c eclman -s f -l format -d "Output format" -xa "text ndjson"
complete -c eclman -s q -l quiet -d "Suppress informational output"
complete -c eclman -l verbose -d "Show debug output"

# open and path
complete -c eclman -n "__fish_seen_subcommand_from open path" -s v -l version -d "Release version" -xa "(eclrun --report-versions eclipse 2>/dev/null)"

# Subcommands
complete -c eclman -n "__fish_seen_subcommand_from obs" -a "validate roundtrip query example"
complete -c eclman -n "__fish_seen_subcommand_from grav" -a "validate surfaces example"
complete -c eclman -n "__fish_seen_subcommand_from obs grav" -F
complete -c eclman -n "__fish_seen_subcommand_from config" -a "show path generate"
complete -c eclman -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`
	_, err := fmt.Fprint(globals.Stdout, script)
	return err
}
