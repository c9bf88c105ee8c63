package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/igolaizola/songstudio/pkg/cmd/catalog"
	"github.com/igolaizola/songstudio/pkg/cmd/compose"
	"github.com/igolaizola/songstudio/pkg/cmd/cover"
	"github.com/igolaizola/songstudio/pkg/cmd/generate"
	"github.com/igolaizola/songstudio/pkg/cmd/library"
	"github.com/igolaizola/songstudio/pkg/cmd/migrate"
	"github.com/igolaizola/songstudio/pkg/cmd/preset"
	"github.com/igolaizola/songstudio/pkg/cmd/projects"
	"github.com/igolaizola/songstudio/pkg/cmd/setting"
	"github.com/igolaizola/songstudio/pkg/cmd/structure"
	"github.com/igolaizola/songstudio/pkg/cmd/variation"
	"github.com/igolaizola/songstudio/pkg/cmd/web"
	"github.com/igolaizola/songstudio/pkg/logger"
	"github.com/igolaizola/songstudio/pkg/openai"
	"github.com/igolaizola/songstudio/pkg/project"
	"github.com/igolaizola/songstudio/pkg/studio"
	"github.com/peterbourgon/ff/ffyaml"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

const envPrefix = "SONGSTUDIO"

func New(version, commit, date string) *ffcli.Command {
	fs := flag.NewFlagSet("songstudio", flag.ExitOnError)

	return &ffcli.Command{
		ShortUsage: "songstudio [flags] <subcommand>",
		FlagSet:    fs,
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			newVersionCommand(version, commit, date),
			newMigrateCommand(),
			newSettingCommand(),
			newCreateCommand(),
			newListCommand(),
			newShowCommand(),
			newEditCommand(),
			newDeleteCommand(),
			newExportCommand(),
			newImportCommand(),
			newRemixCommand(),
			newStructureCommand(),
			newPresetCommand(),
			newVariationCommand(),
			newComposeCommand(),
			newGenerateCommand(),
			newCoverCommand(),
			newLibraryCommand(),
			newCatalogCommand(),
			newWebCommand(),
		},
	}
}

func newVersionCommand(version, commit, date string) *ffcli.Command {
	return &ffcli.Command{
		Name:       "version",
		ShortUsage: "songstudio version",
		ShortHelp:  "print version",
		Exec: func(ctx context.Context, args []string) error {
			v := version
			if v == "" {
				if buildInfo, ok := debug.ReadBuildInfo(); ok {
					v = buildInfo.Main.Version
				}
			}
			if v == "" {
				v = "dev"
			}
			versionFields := []string{v}
			if commit != "" {
				versionFields = append(versionFields, commit)
			}
			if date != "" {
				versionFields = append(versionFields, date)
			}
			fmt.Println(strings.Join(versionFields, " "))
			return nil
		},
	}
}

// common holds the flags shared by every database command.
type common struct {
	Debug   bool
	DBType  string
	DBConn  string
	LogFile string
}

func commonFlags(fs *flag.FlagSet) *common {
	c := &common{}
	_ = fs.String("config", "", "config file (optional)")
	fs.BoolVar(&c.Debug, "debug", false, "debug mode")
	fs.StringVar(&c.DBType, "db-type", "sqlite", "db type (sqlite, mysql, postgres)")
	fs.StringVar(&c.DBConn, "db-conn", "songstudio.db", "path for sqlite, dsn for mysql or postgres")
	fs.StringVar(&c.LogFile, "log-file", "", "log file with rotation (optional)")
	return c
}

// command builds a subcommand with the shared option set. The logger is
// configured before exec runs.
func command(name, usage, help string, fs *flag.FlagSet, c *common, exec func(ctx context.Context, args []string) error) *ffcli.Command {
	return &ffcli.Command{
		Name:       name,
		ShortUsage: fmt.Sprintf("songstudio %s [flags] %s", name, usage),
		Options: []ff.Option{
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithEnvVarPrefix(envPrefix),
		},
		ShortHelp: help,
		FlagSet:   fs,
		Exec: func(ctx context.Context, args []string) error {
			var cfg logger.Config
			if c != nil {
				cfg = logger.Config{Debug: c.Debug, File: c.LogFile}
			}
			sync, err := logger.Setup(cfg)
			if err != nil {
				return err
			}
			defer sync()
			return exec(ctx, args)
		},
	}
}

func argN(args []string, n int, what string) error {
	if len(args) < n {
		return fmt.Errorf("missing %s", what)
	}
	return nil
}

func newMigrateCommand() *ffcli.Command {
	cmd := "migrate"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	return command(cmd, "", "create or upgrade the database", fs, c, func(ctx context.Context, args []string) error {
		return migrate.Run(ctx, &migrate.Config{Debug: c.Debug, DBType: c.DBType, DBConn: c.DBConn})
	})
}

func newSettingCommand() *ffcli.Command {
	cmd := "setting"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	cfg := &setting.Config{Output: os.Stdout}
	fs.IntVar(&cfg.Page, "page", 1, "page to list")
	fs.IntVar(&cfg.Size, "size", 100, "page size")
	fs.StringVar(&cfg.Prefix, "prefix", "", "only list keys with this prefix")
	return command(cmd, "<list|get|set|delete> [key] [json]", "manage raw stored documents", fs, c, func(ctx context.Context, args []string) error {
		cfg.Debug, cfg.DBType, cfg.DBConn = c.Debug, c.DBType, c.DBConn
		return setting.Run(ctx, cfg, args)
	})
}

func projectsConfig(c *common) *projects.Config {
	return &projects.Config{Debug: c.Debug, DBType: c.DBType, DBConn: c.DBConn, Output: os.Stdout}
}

func newCreateCommand() *ffcli.Command {
	cmd := "create"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	var form studio.Form
	fs.StringVar(&form.Title, "title", "", "project title")
	fs.StringVar(&form.Genre, "genre", "", "genre")
	fs.StringVar(&form.SubGenre, "sub-genre", "", "sub-genre")
	fs.StringVar(&form.Mood, "mood", "", "mood")
	return command(cmd, "", "create a project", fs, c, func(ctx context.Context, args []string) error {
		return projects.RunCreate(ctx, projectsConfig(c), form)
	})
}

func newListCommand() *ffcli.Command {
	cmd := "list"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	return command(cmd, "", "list projects, most recent first", fs, c, func(ctx context.Context, args []string) error {
		return projects.RunList(ctx, projectsConfig(c))
	})
}

func newShowCommand() *ffcli.Command {
	cmd := "show"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	return command(cmd, "<id>", "print a project", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		return projects.RunShow(ctx, projectsConfig(c), args[0])
	})
}

// patchFlags registers one flag per editable field. The returned function
// builds a patch from the flags that were set.
func patchFlags(fs *flag.FlagSet) func() project.Patch {
	strs := map[string]*string{}
	str := func(name, usage string) {
		strs[name] = fs.String(name, "", usage)
	}
	str("title", "title")
	str("genre", "genre")
	str("sub-genre", "sub-genre")
	str("mood", "mood")
	str("concept", "concept or topic")
	str("style", "style description")
	str("key", "musical key")
	str("reference-song", "reference song title")
	str("reference-artist", "reference artist")
	str("lyrics", "lyrics")
	str("excluded-themes", "themes to avoid")
	str("sound-prompt", "sound prompt")
	str("vocal-type", "vocal type")
	str("dj-name", "dj name")
	str("intro-style", "intro style id")
	str("instruments", "comma separated instruments")
	bpm := fs.Int("bpm", 0, "tempo")

	return func() project.Patch {
		var u project.Patch
		fields := map[string]**string{
			"title":            &u.Title,
			"genre":            &u.Genre,
			"sub-genre":        &u.SubGenre,
			"mood":             &u.Mood,
			"concept":          &u.Concept,
			"style":            &u.StyleDescription,
			"key":              &u.Key,
			"reference-song":   &u.ReferenceSongTitle,
			"reference-artist": &u.ReferenceArtist,
			"lyrics":           &u.Lyrics,
			"excluded-themes":  &u.ExcludedThemes,
			"sound-prompt":     &u.SoundPrompt,
			"vocal-type":       &u.VocalType,
			"dj-name":          &u.DJName,
			"intro-style":      &u.IntroStyle,
		}
		fs.Visit(func(f *flag.Flag) {
			if dst, ok := fields[f.Name]; ok {
				*dst = project.String(*strs[f.Name])
			}
			switch f.Name {
			case "bpm":
				u.BPM = project.Int(*bpm)
			case "instruments":
				var list []string
				for _, v := range strings.Split(*strs["instruments"], ",") {
					if v = strings.TrimSpace(v); v != "" {
						list = append(list, v)
					}
				}
				u.Instruments = project.Strings(list)
			}
		})
		return u
	}
}

func newEditCommand() *ffcli.Command {
	cmd := "edit"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	patch := patchFlags(fs)
	return command(cmd, "<id>", "change project fields", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		return projects.RunEdit(ctx, projectsConfig(c), args[0], patch())
	})
}

func newDeleteCommand() *ffcli.Command {
	cmd := "delete"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	fsType := fs.String("fs-type", "", "fs type (local, s3) to remove the stored cover from (optional)")
	fsConn := fs.String("fs-conn", "", "path for local, key:secret@bucket.region for s3")
	return command(cmd, "<id>", "delete a project", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		cfg := projectsConfig(c)
		cfg.FSType, cfg.FSConn = *fsType, *fsConn
		return projects.RunDelete(ctx, cfg, args[0])
	})
}

func newExportCommand() *ffcli.Command {
	cmd := "export"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	output := fs.String("output", "", "output file (stdout if empty)")
	return command(cmd, "<id>", "export a project as json", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		return projects.RunExport(ctx, projectsConfig(c), args[0], *output)
	})
}

func newImportCommand() *ffcli.Command {
	cmd := "import"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	return command(cmd, "<file...>", "import exported projects", fs, c, func(ctx context.Context, args []string) error {
		return projects.RunImport(ctx, projectsConfig(c), args)
	})
}

func newRemixCommand() *ffcli.Command {
	cmd := "remix"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	return command(cmd, "<id>", "copy a project as a remix", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		return projects.RunRemix(ctx, projectsConfig(c), args[0])
	})
}

func newStructureCommand() *ffcli.Command {
	cmd := "structure"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	return command(cmd, "<id> [show|template|add|remove|move|describe] [args...]", "edit the song structure", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		return structure.Run(ctx, &structure.Config{Debug: c.Debug, DBType: c.DBType, DBConn: c.DBConn, Output: os.Stdout}, args[0], args[1:])
	})
}

func newPresetCommand() *ffcli.Command {
	cmd := "preset"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	cfg := &preset.Config{Output: os.Stdout}
	fs.StringVar(&cfg.Topic, "topic", "", "theme topic")
	fs.StringVar(&cfg.Style, "style", "", "theme style")
	fs.StringVar(&cfg.Artist, "artist", "", "reference artist")
	return command(cmd, "<id> <genre|instruments|template|intro|toggle|title|theme|reference> <value...>", "apply a preset", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 2, "project id and preset kind"); err != nil {
			return err
		}
		cfg.Debug, cfg.DBType, cfg.DBConn = c.Debug, c.DBType, c.DBConn
		return preset.Run(ctx, cfg, args[0], args[1], args[2:])
	})
}

func newVariationCommand() *ffcli.Command {
	cmd := "variation"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	return command(cmd, "<id> [apply <index>]", "list or apply lyric variations", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		return variation.Run(ctx, &variation.Config{Debug: c.Debug, DBType: c.DBType, DBConn: c.DBConn, Output: os.Stdout}, args[0], args[1:])
	})
}

func requestFlags(fs *flag.FlagSet, r *studio.Request) {
	fs.StringVar(&r.Lyrics.Language, "language", "", "lyric language")
	fs.StringVar(&r.Lyrics.Length, "length", "", "lyric length")
	fs.BoolVar(&r.Lyrics.DanceMode, "dance", false, "dance floor lyric mode")
	fs.BoolVar(&r.Lyrics.AutoAdjustLength, "auto-length", false, "fit the lyric length to the structure")
	fs.BoolVar(&r.Sound.StrictDance, "strict-dance", false, "strict dance mode for the sound prompt")
	fs.StringVar(&r.Sound.Version, "sound-version", "v5", "sound model version (v5, v3.5)")
	fs.StringVar(&r.Art.Mood, "art-mood", "", "cover mood")
	fs.StringVar(&r.Art.Style, "art-style", "", "cover art style")
	fs.StringVar(&r.Art.Characters, "characters", "", "cover characters")
	fs.StringVar(&r.Art.Description, "art-description", "", "extra cover description")
	fs.IntVar(&r.Art.SizePreset, "size-preset", 0, "cover size preset id")
	fs.StringVar(&r.ImageSize, "image-size", "1K", "image size class (1K, 2K, 4K)")
	fs.StringVar(&r.Keywords, "keywords", "", "theme pack keywords")
	fs.StringVar(&r.Artist, "artist", "", "metadata artist")
}

func openaiFlags(fs *flag.FlagSet, c *openai.Config) {
	fs.StringVar(&c.Token, "openai-token", "", "openai api token")
	fs.StringVar(&c.Model, "openai-model", openai.DefaultModel, "openai text model")
	fs.StringVar(&c.ImageModel, "openai-image-model", openai.DefaultImageModel, "openai image model")
	fs.StringVar(&c.BaseURL, "openai-base-url", "", "openai compatible endpoint (optional)")
	fs.DurationVar(&c.Timeout, "openai-timeout", 2*time.Minute, "openai request timeout")
}

func kinds(args []string) []studio.Affordance {
	out := make([]studio.Affordance, 0, len(args))
	for _, a := range args {
		out = append(out, studio.Affordance(a))
	}
	return out
}

func newComposeCommand() *ffcli.Command {
	cmd := "compose"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	cfg := &compose.Config{Output: os.Stdout}
	requestFlags(fs, &cfg.Request)
	return command(cmd, "<id> [lyrics|sound|cover|metadata|advice|variations|themes|titles|references...]", "print generation prompts", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		cfg.Debug, cfg.DBType, cfg.DBConn = c.Debug, c.DBType, c.DBConn
		return compose.Run(ctx, cfg, args[0], kinds(args[1:]))
	})
}

func newGenerateCommand() *ffcli.Command {
	cmd := "generate"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	cfg := &generate.Config{Output: os.Stdout}
	requestFlags(fs, &cfg.Request)
	openaiFlags(fs, &cfg.OpenAI)
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "timeout for the process (0 means no timeout)")
	return command(cmd, "<id> <lyrics|sound|cover|advice|variations|themes|titles|references...>", "generate content with openai", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 2, "project id and kind"); err != nil {
			return err
		}
		cfg.Debug, cfg.DBType, cfg.DBConn = c.Debug, c.DBType, c.DBConn
		cfg.OpenAI.Debug = c.Debug
		return generate.Run(ctx, cfg, args[0], kinds(args[1:]))
	})
}

func newCoverCommand() *ffcli.Command {
	cmd := "cover"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	cfg := &cover.Config{Output: os.Stdout}
	fs.StringVar(&cfg.FSType, "fs-type", "local", "fs type (local, s3)")
	fs.StringVar(&cfg.FSConn, "fs-conn", "covers", "path for local, key:secret@bucket.region for s3")
	fs.BoolVar(&cfg.Generate, "generate", false, "generate a new cover before uploading")
	fs.StringVar(&cfg.Download, "download", "", "download the stored cover to this path instead of uploading")
	requestFlags(fs, &cfg.Request)
	openaiFlags(fs, &cfg.OpenAI)
	return command(cmd, "<id>", "upload or download the project cover", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "project id"); err != nil {
			return err
		}
		cfg.Debug, cfg.DBType, cfg.DBConn = c.Debug, c.DBType, c.DBConn
		cfg.OpenAI.Debug = c.Debug
		return cover.Run(ctx, cfg, args[0])
	})
}

func newLibraryCommand() *ffcli.Command {
	cmd := "library"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	return command(cmd, "<presets|prompts|art|export> [list|add|remove|import] [args...]", "manage saved presets, prompts and artists", fs, c, func(ctx context.Context, args []string) error {
		if err := argN(args, 1, "list name"); err != nil {
			return err
		}
		cfg := &library.Config{Debug: c.Debug, DBType: c.DBType, DBConn: c.DBConn, Output: os.Stdout}
		return library.Run(ctx, cfg, args[0], args[1:])
	})
}

func newCatalogCommand() *ffcli.Command {
	cmd := "catalog"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	cfg := &catalog.Config{Output: os.Stdout}
	_ = fs.String("config", "", "config file (optional)")
	fs.StringVar(&cfg.Format, "format", "yaml", "output format (yaml, json)")
	return command(cmd, "[table]", "print the reference tables", fs, nil, func(ctx context.Context, args []string) error {
		var table string
		if len(args) > 0 {
			table = args[0]
		}
		return catalog.Run(cfg, table)
	})
}

func newWebCommand() *ffcli.Command {
	cmd := "web"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	c := commonFlags(fs)
	cfg := &web.Config{}
	fs.StringVar(&cfg.FSType, "fs-type", "", "fs type (local, s3), empty disables uploads")
	fs.StringVar(&cfg.FSConn, "fs-conn", "", "path for local, key:secret@bucket.region for s3")
	fs.StringVar(&cfg.Addr, "addr", ":1337", "address to listen on")
	fsMapVar(fs, &cfg.Credentials, "creds", nil, "credentials to use (semicolon separated) Example: user1:pass1;user2:pass2")
	openaiFlags(fs, &cfg.OpenAI)
	return command(cmd, "", "serve the studio api", fs, c, func(ctx context.Context, args []string) error {
		cfg.Debug, cfg.DBType, cfg.DBConn = c.Debug, c.DBType, c.DBConn
		cfg.OpenAI.Debug = c.Debug
		return web.Serve(ctx, cfg)
	})
}

type mapValue struct {
	v *map[string]string
}

func (m *mapValue) String() string {
	if m.v == nil {
		return ""
	}
	return fmt.Sprintf("%v", map[string]string(*m.v))
}

func (m *mapValue) Set(value string) error {
	if m.v == nil {
		return errors.New("nil map reference")
	}
	pairs := strings.Split(value, ";")
	for _, pair := range pairs {
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid map entry: %s", pair)
		}
		(*m.v)[parts[0]] = parts[1]
	}
	return nil
}

func fsMapVar(fs *flag.FlagSet, p *map[string]string, name string, value map[string]string, usage string) {
	if value == nil {
		value = make(map[string]string)
	}
	*p = value
	fs.Var(&mapValue{p}, name, usage)
}
