// ABOUTME: Entry point for the storywizard CLI
// ABOUTME: Account, story, and AI commands over the local story database

package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/quillworks/storywizard/internal/catalog"
	"github.com/quillworks/storywizard/internal/config"
	"github.com/quillworks/storywizard/internal/export"
	"github.com/quillworks/storywizard/internal/gateway"
	"github.com/quillworks/storywizard/internal/identity"
	"github.com/quillworks/storywizard/internal/kv"
	"github.com/quillworks/storywizard/internal/locale"
	"github.com/quillworks/storywizard/internal/story"
	"github.com/quillworks/storywizard/internal/workspace"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
     _                             _                  _
 ___| |_ ___  _ __ _   ___      _(_)______ _ _ __ __| |
/ __| __/ _ \| '__| | | \ \ /\ / / |_  / _' | '__/ _' |
\__ \ || (_) | |  | |_| |\ V  V /| |/ / (_| | | | (_| |
|___/\__\___/|_|   \__, | \_/\_/ |_/___\__,_|_|  \__,_|
                   |___/
`

// getConfigPath returns the path to the config file.
// Priority: STORYWIZARD_CONFIG env var > XDG_CONFIG_HOME/storywizard/config.yaml > ~/.config/storywizard/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("STORYWIZARD_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "storywizard", "config.yaml")
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return
	}
	if cmd == "version" {
		fmt.Println(version)
		return
	}
	if cmd == "init" {
		if err := cmdInit(); err != nil {
			color.Red("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	app, err := newApp(context.Background())
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	defer app.close()

	ctx := context.Background()
	switch cmd {
	case "signup":
		err = app.cmdSignup(ctx, args)
	case "login":
		err = app.cmdLogin(ctx, args)
	case "logout":
		err = app.cmdLogout(ctx)
	case "whoami":
		err = app.cmdWhoami()
	case "locale":
		err = app.cmdLocale(ctx, args)
	case "stories":
		err = app.cmdStories(ctx, args)
	case "community":
		err = app.cmdCommunity()
	case "clone":
		err = app.cmdClone(ctx, args)
	case "add":
		err = app.cmdAdd(ctx, args)
	case "enhance":
		err = app.cmdEnhance(ctx, args)
	case "synopsis":
		err = app.cmdSynopsis(ctx)
	case "illustrate":
		err = app.cmdIllustrate(ctx, args)
	case "export":
		err = app.cmdExport(ctx, args)
	case "chat":
		err = app.cmdChat(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: storywizard <command> [args]")
	fmt.Println()
	yellow.Println("Setup:")
	fmt.Println("  init                       Write a starter config file")
	fmt.Println()
	yellow.Println("Account:")
	fmt.Println("  signup <email> <name>      Create an account and log in")
	fmt.Println("  login <email>              Log in (password read from stdin)")
	fmt.Println("  logout                     Log out")
	fmt.Println("  whoami                     Show the current session identity")
	fmt.Println()
	yellow.Println("Stories:")
	fmt.Println("  stories                    List your stories")
	fmt.Println("  stories new <title>        Create a story and make it active")
	fmt.Println("  stories use <id>           Select the active story")
	fmt.Println("  stories show               Show the active story")
	fmt.Println("  stories delete <id>        Delete a story")
	fmt.Println("  community                  Browse the community showcase")
	fmt.Println("  clone <showcase-id>        Clone a showcase story into your library")
	fmt.Println("  add character <name>       Add a character to the active story")
	fmt.Println("  add world <name>           Add a world to the active story")
	fmt.Println("  add chapter <title>        Add a chapter to the active story")
	fmt.Println("  add item <name> [desc]     Add an item to the active story")
	fmt.Println()
	yellow.Println("AI:")
	fmt.Println("  enhance character <id>     Expand a character via the AI gateway")
	fmt.Println("  enhance world <id>         Expand a world via the AI gateway")
	fmt.Println("  synopsis                   Generate a synopsis of the active story")
	fmt.Println("  illustrate item <id>       Generate an image for an item")
	fmt.Println("  illustrate scene <chapter> Generate a scene illustration")
	fmt.Println("  chat [message]             Chat about the active story (REPL if no message)")
	fmt.Println()
	yellow.Println("Other:")
	fmt.Println("  locale [code]              Show or set the display locale (en, ar)")
	fmt.Println("  export <path>              Export the active story (.md or .html)")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  STORYWIZARD_CONFIG         Config file path (default: ~/.config/storywizard/config.yaml)")
	fmt.Println("  GEMINI_API_KEY             API key for the AI gateway")
	fmt.Println()
}

const starterConfig = `# storywizard configuration
database:
  path: ""            # default: ~/.config/storywizard/storywizard.db
gemini:
  api_key: ${GEMINI_API_KEY}
  model: ""           # default: gemini-2.5-flash
editor:
  autosave_debounce: 1s
locale: en
logging:
  level: warn
  format: text
`

// cmdInit writes a starter config file. Refuses to overwrite an existing one.
func cmdInit() error {
	path := getConfigPath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	color.Green("Wrote %s\n", path)
	return nil
}

// app wires the stores together for the lifetime of one command.
type app struct {
	cfg       *config.Config
	db        kv.Store
	identity  *identity.Service
	translate *locale.Translator
	ws        *workspace.Workspace
}

func newApp(ctx context.Context) (*app, error) {
	cfgPath := getConfigPath()
	var cfg *config.Config
	if _, err := os.Stat(cfgPath); err == nil {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Default()
	}

	slog.SetDefault(setupLogger(cfg.Logging))

	db, err := kv.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	ident, err := identity.NewService(ctx, db, []byte(cfg.Session.Secret))
	if err != nil {
		db.Close()
		return nil, err
	}

	translate, err := locale.NewTranslator(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	var generator gateway.Generator
	if cfg.Gemini.APIKey != "" {
		client, err := gateway.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			db.Close()
			return nil, err
		}
		generator = client
	}

	ws, err := workspace.New(ctx, db, ident, generator, cfg.Editor.AutosaveDebounce)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &app{cfg: cfg, db: db, identity: ident, translate: translate, ws: ws}, nil
}

func (a *app) close() {
	a.ws.Close()
	if err := a.db.Close(); err != nil {
		slog.Warn("closing database", "error", err)
	}
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: signup <email> <name>")
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	u, err := a.identity.Signup(ctx, args[0], strings.Join(args[1:], " "), password)
	if err != nil {
		return err
	}
	color.Green("Welcome, %s!\n", u.Name)
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: login <email>")
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	u, err := a.identity.Login(ctx, args[0], password)
	if err != nil {
		return err
	}
	color.Green("%s\n", a.translate.T("welcome_back"))
	fmt.Printf("Logged in as %s <%s>\n", u.Name, u.Email)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	if err := a.identity.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *app) cmdWhoami() error {
	u, ok := a.identity.CurrentUser()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", u.Name, u.Email)
	return nil
}

func (a *app) cmdLocale(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println(a.translate.Locale())
		return nil
	}
	if err := a.translate.SetLocale(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Locale set to %s\n", args[0])
	return nil
}

func (a *app) cmdStories(ctx context.Context, args []string) error {
	stories, err := a.ws.Stories()
	if err != nil {
		return err
	}

	subcmd := "list"
	if len(args) > 0 {
		subcmd = args[0]
		args = args[1:]
	}

	switch subcmd {
	case "list", "ls":
		return a.storiesList(stories)
	case "new":
		if len(args) < 1 {
			return fmt.Errorf("usage: stories new <title>")
		}
		st, err := stories.AddStory(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		color.Green("Created %q (%s)\n", st.Title, shortID(st.ID))
		return nil
	case "use":
		if len(args) != 1 {
			return fmt.Errorf("usage: stories use <id>")
		}
		id, err := resolveStoryID(stories, args[0])
		if err != nil {
			return err
		}
		return stories.SetActiveStoryID(ctx, id)
	case "show":
		return a.storiesShow(stories)
	case "delete", "rm", "remove":
		if len(args) != 1 {
			return fmt.Errorf("usage: stories delete <id>")
		}
		id, err := resolveStoryID(stories, args[0])
		if err != nil {
			return err
		}
		return stories.DeleteStory(ctx, id)
	default:
		return fmt.Errorf("unknown stories subcommand: %s (use list, new, use, show, delete)", subcmd)
	}
}

func (a *app) storiesList(stories *story.Store) error {
	all := stories.Stories()
	activeID, _ := stories.ActiveStoryID()

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  %s\n", a.translate.T("my_stories"))
	cyan.Println("  ----------")

	if len(all) == 0 {
		fmt.Println("  (no stories)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTITLE\tCHAPTERS\tACTIVE")
	for _, st := range all {
		active := ""
		if st.ID == activeID {
			active = "*"
		}
		fmt.Fprintf(w, "  %s\t%s\t%d\t%s\n", shortID(st.ID), st.Title, len(st.Chapters), active)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) storiesShow(stories *story.Store) error {
	st, ok := stories.ActiveStory()
	if !ok {
		fmt.Println("No active story.")
		return nil
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  %s\n", st.Title)
	cyan.Println("  " + strings.Repeat("-", len(st.Title)))
	if st.Genre != "" {
		fmt.Printf("  Genre:    %s\n", st.Genre)
	}
	if st.Tone != "" {
		fmt.Printf("  Tone:     %s\n", st.Tone)
	}
	if st.Outline != "" {
		fmt.Printf("  Outline:  %s\n", st.Outline)
	}
	fmt.Printf("  Chapters: %d  Characters: %d  Worlds: %d  Items: %d\n",
		len(st.Chapters), len(st.Characters), len(st.Worlds), len(st.Items))

	for i, ch := range st.Chapters {
		fmt.Printf("    %d. %s (%s)\n", i+1, ch.Title, ch.TensionLevel)
	}
	fmt.Println()
	return nil
}

func (a *app) cmdCommunity() error {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  %s\n", a.translate.T("community_showcase"))
	cyan.Println("  ------------------")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTITLE\tAUTHOR\tGENRE")
	for _, st := range catalog.Stories() {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", st.ID, st.Title, st.Author, st.Genre)
	}
	w.Flush()
	fmt.Println()
	return nil
}

func (a *app) cmdClone(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: clone <showcase-id>")
	}
	source, ok := catalog.Find(args[0])
	if !ok {
		return fmt.Errorf("no showcase story with id %q", args[0])
	}

	stories, err := a.ws.Stories()
	if err != nil {
		return err
	}
	st, err := stories.CloneStory(ctx, source)
	if err != nil {
		return err
	}
	color.Green("Cloned %q into your library (%s)\n", st.Title, shortID(st.ID))
	return nil
}

func (a *app) cmdAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: add <character|world|chapter|item> <name> [description]")
	}
	stories, err := a.ws.Stories()
	if err != nil {
		return err
	}
	active, ok := stories.ActiveStory()
	if !ok {
		return fmt.Errorf("no active story; create one with 'stories new'")
	}

	kind := args[0]
	name := args[1]
	rest := strings.Join(args[2:], " ")

	switch kind {
	case "character":
		c, err := stories.AddCharacter(ctx, active.ID, story.Character{Name: name})
		if err != nil {
			return err
		}
		color.Green("Added character %q (%s)\n", c.Name, shortID(c.ID))
	case "world":
		w, err := stories.AddWorld(ctx, active.ID, story.World{Name: name, Description: rest})
		if err != nil {
			return err
		}
		color.Green("Added world %q (%s)\n", w.Name, shortID(w.ID))
	case "chapter":
		ch, err := stories.AddChapter(ctx, active.ID, story.Chapter{Title: name})
		if err != nil {
			return err
		}
		color.Green("Added chapter %q (%s)\n", ch.Title, shortID(ch.ID))
	case "item":
		it, err := stories.AddItem(ctx, active.ID, story.Item{Name: name, Description: rest})
		if err != nil {
			return err
		}
		color.Green("Added item %q (%s)\n", it.Name, shortID(it.ID))
	default:
		return fmt.Errorf("unknown entity kind: %s (use character, world, chapter, item)", kind)
	}
	return nil
}

func (a *app) cmdEnhance(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: enhance <character|world> <id>")
	}
	gen := a.ws.Generator()
	if gen == nil {
		return fmt.Errorf("no API key configured; set GEMINI_API_KEY or gemini.api_key")
	}
	stories, err := a.ws.Stories()
	if err != nil {
		return err
	}
	active, ok := stories.ActiveStory()
	if !ok {
		return fmt.Errorf("no active story")
	}

	switch args[0] {
	case "character":
		var target *story.Character
		for i := range active.Characters {
			if matchesID(active.Characters[i].ID, args[1]) {
				target = &active.Characters[i]
				break
			}
		}
		if target == nil {
			return story.ErrEntityNotFound
		}

		profile, err := gen.GenerateCharacterProfile(ctx, describeCharacter(target))
		if err != nil {
			return err
		}
		profile.ID = target.ID
		profile.Name = target.Name
		if err := stories.UpdateCharacter(ctx, active.ID, *profile); err != nil {
			return err
		}
		color.Green("Enhanced character %q\n", target.Name)
	case "world":
		var target *story.World
		for i := range active.Worlds {
			if matchesID(active.Worlds[i].ID, args[1]) {
				target = &active.Worlds[i]
				break
			}
		}
		if target == nil {
			return story.ErrEntityNotFound
		}

		details, err := gen.GenerateWorldDetails(ctx, target.Name+": "+target.Description)
		if err != nil {
			return err
		}
		target.Description = details.Description
		target.Geography = details.Geography
		target.Culture = details.Culture
		if err := stories.UpdateWorld(ctx, active.ID, *target); err != nil {
			return err
		}
		color.Green("Enhanced world %q\n", target.Name)
	default:
		return fmt.Errorf("unknown enhance target: %s (use character, world)", args[0])
	}
	return nil
}

func (a *app) cmdSynopsis(ctx context.Context) error {
	gen := a.ws.Generator()
	if gen == nil {
		return fmt.Errorf("no API key configured; set GEMINI_API_KEY or gemini.api_key")
	}
	stories, err := a.ws.Stories()
	if err != nil {
		return err
	}
	active, ok := stories.ActiveStory()
	if !ok {
		return fmt.Errorf("no active story")
	}

	synopsis, err := gen.GenerateStorySynopsis(ctx, active.Chapters)
	if err != nil {
		return err
	}
	fmt.Println(synopsis)
	return nil
}

func (a *app) cmdIllustrate(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: illustrate <item|scene> <id>")
	}
	gen := a.ws.Generator()
	if gen == nil {
		return fmt.Errorf("no API key configured; set GEMINI_API_KEY or gemini.api_key")
	}
	stories, err := a.ws.Stories()
	if err != nil {
		return err
	}
	active, ok := stories.ActiveStory()
	if !ok {
		return fmt.Errorf("no active story")
	}

	switch args[0] {
	case "item":
		for _, it := range active.Items {
			if !matchesID(it.ID, args[1]) {
				continue
			}
			img, err := gen.GenerateItemImage(ctx, it.Name+": "+it.Description)
			if err != nil {
				return err
			}
			it.ImageURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)
			if err := stories.UpdateItem(ctx, active.ID, it); err != nil {
				return err
			}
			color.Green("Illustrated item %q\n", it.Name)
			return nil
		}
		return story.ErrEntityNotFound
	case "scene":
		for _, ch := range active.Chapters {
			if !matchesID(ch.ID, args[1]) {
				continue
			}
			if ch.Content == "" {
				return fmt.Errorf("chapter %q has no content to illustrate", ch.Title)
			}
			img, err := gen.GenerateSceneIllustration(ctx, ch.Content)
			if err != nil {
				return err
			}
			il, err := stories.AddIllustration(ctx, active.ID, story.Illustration{
				Prompt:    ch.Content,
				ImageURL:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(img),
				ChapterID: ch.ID,
			})
			if err != nil {
				return err
			}
			color.Green("Illustrated scene from %q (%s)\n", ch.Title, shortID(il.ID))
			return nil
		}
		return story.ErrEntityNotFound
	default:
		return fmt.Errorf("unknown illustrate target: %s (use item, scene)", args[0])
	}
}

func (a *app) cmdExport(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: export <path> (.md or .html)")
	}
	stories, err := a.ws.Stories()
	if err != nil {
		return err
	}
	active, ok := stories.ActiveStory()
	if !ok {
		return fmt.Errorf("no active story")
	}

	// Synopsis is best-effort: exports work without an API key.
	synopsis := ""
	if gen := a.ws.Generator(); gen != nil {
		if s, err := gen.GenerateStorySynopsis(ctx, active.Chapters); err == nil && s != gateway.SynopsisPlaceholder {
			synopsis = s
		}
	}

	path := args[0]
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		data, err = export.HTML(active, synopsis, a.translate.Locale(), a.translate.RTL())
		if err != nil {
			return err
		}
	default:
		data = []byte(export.Markdown(active, synopsis))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	color.Green("Exported %q to %s\n", active.Title, path)
	return nil
}

func (a *app) cmdChat(ctx context.Context, args []string) error {
	session, err := a.ws.ChatSession()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return chatTurn(ctx, session, strings.Join(args, " "))
	}

	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	cyan.Println("Chat about your story (Ctrl+D to exit)")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 1024*1024) // 1MB max input
	for {
		green.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := chatTurn(ctx, session, line); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		fmt.Println()
	}
}

func chatTurn(ctx context.Context, session gateway.ChatSession, message string) error {
	chunks, err := session.Send(ctx, message)
	if err != nil {
		return err
	}
	for chunk := range chunks {
		if chunk.Err != nil {
			return chunk.Err
		}
		fmt.Print(chunk.Text)
	}
	fmt.Println()
	return nil
}

// describeCharacter summarizes what the user has entered so far, for the
// enhancement prompt.
func describeCharacter(c *story.Character) string {
	parts := []string{c.Name}
	for _, s := range []string{c.Gender, c.Age, c.Species, c.Role, c.Backstory} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// resolveStoryID accepts a full or shortened story id.
func resolveStoryID(stories *story.Store, arg string) (string, error) {
	for _, st := range stories.Stories() {
		if matchesID(st.ID, arg) {
			return st.ID, nil
		}
	}
	return "", story.ErrStoryNotFound
}

func matchesID(id, arg string) bool {
	return id == arg || (len(arg) >= 8 && strings.HasPrefix(id, arg))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input")
	}
	fmt.Println()
	return strings.TrimSpace(scanner.Text()), nil
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
