package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/domain"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/usecase"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/conf"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/data"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/logger"
	"github.com/appdotbuilder/wellness-chat-tracker/internal/service"
)

// appContext carries the wired application into kong command handlers
type appContext struct {
	ctx   context.Context
	cfg   *conf.Config
	store *data.Store
	chat  *service.ChatService
}

var CLI struct {
	DB    string `help:"Path to the sqlite database file." env:"WELLNESS_DB_PATH"`
	Debug bool   `help:"Enable debug logging." env:"WELLNESS_DEBUG"`

	Chat      ChatCmd      `cmd:"" help:"Send a message and print the reply."`
	Recommend RecommendCmd `cmd:"" help:"Generate recommendations."`
	History   HistoryCmd   `cmd:"" help:"Show recent chat messages."`
	User      struct {
		Create UserCreateCmd `cmd:"" help:"Create a user profile."`
		Show   UserShowCmd   `cmd:"" help:"Show a user profile."`
		Update UserUpdateCmd `cmd:"" help:"Update a user profile."`
	} `cmd:"" help:"Manage user profiles."`
}

// ChatCmd sends one message through the extraction pipeline
type ChatCmd struct {
	User string `required:"" help:"User id."`
	Text string `arg:"" help:"Message text."`
}

func (c *ChatCmd) Run(app *appContext) error {
	result, err := app.chat.Send(app.ctx, c.User, c.Text)
	if err != nil {
		return err
	}
	if result.Reply != nil {
		fmt.Println(result.Reply.Text)
	} else {
		fmt.Println("(no reply: message was already processed)")
	}
	return nil
}

// RecommendCmd runs the rule engine for a user, or manages stored
// recommendations
type RecommendCmd struct {
	User     string `required:"" help:"User id."`
	List     bool   `help:"List stored recommendations instead of generating new ones."`
	Unread   bool   `help:"With --list, show only unread recommendations."`
	MarkRead string `help:"Mark a recommendation read by id."`
}

func (c *RecommendCmd) Run(app *appContext) error {
	if c.MarkRead != "" {
		return app.store.MarkRecommendationRead(app.ctx, c.MarkRead)
	}
	if c.List {
		recs, err := app.store.ListRecommendations(app.ctx, c.User, c.Unread)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			status := " "
			if rec.Read {
				status = "x"
			}
			fmt.Printf("[%s] %s (%s/%s) %s: %s\n", status, rec.ID, rec.Category, rec.Priority, rec.Title, rec.Description)
		}
		return nil
	}

	_, reply, err := app.chat.Recommend(app.ctx, c.User)
	if reply != nil {
		fmt.Println(reply.Text)
	}
	return err
}

// HistoryCmd prints the recent transcript
type HistoryCmd struct {
	User  string `required:"" help:"User id."`
	Limit int    `help:"Max messages to show (defaults to the configured history limit)."`
}

func (c *HistoryCmd) Run(app *appContext) error {
	limit := c.Limit
	if limit <= 0 {
		limit = app.cfg.HistoryLimit
	}
	messages, err := app.chat.History(app.ctx, c.User, limit)
	if err != nil {
		return err
	}
	// reverse to oldest-first for reading
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Direction, m.Text)
	}
	return nil
}

// UserCreateCmd creates a profile
type UserCreateCmd struct {
	Name  string `required:"" help:"Display name."`
	Email string `required:"" help:"Email address."`
	Goals string `help:"Goals statement."`
}

func (c *UserCreateCmd) Run(app *appContext) error {
	user, err := app.store.CreateUser(app.ctx, domain.UserDraft{
		Name:  c.Name,
		Email: c.Email,
		Goals: c.Goals,
	})
	if err != nil {
		return err
	}
	fmt.Printf("created user %s\n", user.ID)
	return nil
}

// UserShowCmd prints a profile
type UserShowCmd struct {
	ID string `arg:"" help:"User id."`
}

func (c *UserShowCmd) Run(app *appContext) error {
	user, err := app.store.GetUser(app.ctx, c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	if user.HasGoals() {
		fmt.Printf("goals: %s\n", user.Goals)
	}
	fmt.Printf("onboarded: %v, created: %s\n", user.Onboarded, user.CreatedAt.Format("2006-01-02"))
	return nil
}

// UserUpdateCmd applies a partial profile update
type UserUpdateCmd struct {
	ID        string  `arg:"" help:"User id."`
	Name      *string `help:"New display name."`
	Goals     *string `help:"New goals statement."`
	Onboarded *bool   `help:"Mark onboarding complete."`
}

func (c *UserUpdateCmd) Run(app *appContext) error {
	user, err := app.store.UpdateUser(app.ctx, c.ID, domain.UserPatch{
		Name:      c.Name,
		Goals:     c.Goals,
		Onboarded: c.Onboarded,
	})
	if err != nil {
		return err
	}
	fmt.Printf("updated user %s\n", user.ID)
	return nil
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	kctx := kong.Parse(&CLI,
		kong.Name("wellness-chat"),
		kong.Description("Conversational wellness tracker"),
		kong.UsageOnError(),
	)

	cfg := conf.LoadFromEnv()
	if CLI.DB != "" {
		cfg.DBPath = CLI.DB
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	replies, err := conf.LoadReplies(cfg.RepliesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load replies: %v\n", err)
		os.Exit(1)
	}

	store, err := data.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	composer := usecase.NewComposer(replies.ToTemplates())
	recommendUC := usecase.NewRecommendUsecase(store, store, store)
	chatUC := usecase.NewChatUsecase(store, usecase.NewIntentRouter(), recommendUC, composer, nil)
	chatSvc := service.NewChatService(store, chatUC, recommendUC, composer)

	app := &appContext{
		ctx:   context.Background(),
		cfg:   cfg,
		store: store,
		chat:  chatSvc,
	}
	kctx.FatalIfErrorf(kctx.Run(app))
}
