// Package session implements the conversational flow of the bot: a
// per-user menu state machine that routes free-text input into the
// numeral and code-generation pipelines and localizes every reply.
//
// The engine is transport-agnostic: the HTTP webhook and the local chat
// REPL both feed it plain text and send back the Reply it returns.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/dzformation/algopascal/internal/codegen"
	"github.com/dzformation/algopascal/internal/i18n"
	"github.com/dzformation/algopascal/internal/numeral"
	"github.com/dzformation/algopascal/internal/store"
)

// State is where a user currently is in the conversation.
type State string

// Conversation states.
const (
	StateMenu               State = "menu"
	StateChoosingLanguage   State = "choosing_language"
	StateAwaitingNumber     State = "awaiting_number"
	StateAwaitingDetect     State = "awaiting_detect"
	StateAwaitingExpression State = "awaiting_expression"
)

// Reply is what the transport should send back to the user.
type Reply struct {
	Text    string   `json:"text"`
	Buttons []string `json:"buttons,omitempty"`
}

// Engine drives the conversation for all users. Per-user state lives in
// memory; identity and language preference persist in the store.
type Engine struct {
	catalog *i18n.Catalog
	users   *store.Store
	logger  *slog.Logger

	mu     sync.Mutex
	states map[int64]State
}

// NewEngine builds a conversation engine. A nil logger discards logs.
func NewEngine(catalog *i18n.Catalog, users *store.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		catalog: catalog,
		users:   users,
		logger:  logger,
		states:  make(map[int64]State),
	}
}

// Handle processes one incoming message and produces the reply. The
// langHint (e.g. a client locale like "fr-DZ") only matters for users
// without a stored preference.
func (e *Engine) Handle(ctx context.Context, chatID int64, username, langHint, text string) (Reply, error) {
	known := true
	user, err := e.users.GetUser(ctx, chatID)
	if err != nil {
		known = false
	}
	if err := e.users.UpsertUser(ctx, chatID, username); err != nil {
		return Reply{}, err
	}

	lang := e.catalog.Match(langHint)
	if known && user.Language != "" {
		lang = user.Language
	} else if !known {
		if err := e.users.SetLanguage(ctx, chatID, lang); err != nil {
			return Reply{}, err
		}
	}

	text = strings.TrimSpace(text)
	e.logger.Debug("handling message", "chat_id", chatID, "state", e.state(chatID), "lang", lang)

	switch text {
	case "/start":
		if !known {
			e.setState(chatID, StateChoosingLanguage)
			return Reply{
				Text:    e.t(lang, "welcome_new", map[string]string{"name": displayName(username, chatID)}),
				Buttons: e.languageButtons(),
			}, nil
		}
		e.setState(chatID, StateMenu)
		welcome := e.t(lang, "welcome_back", map[string]string{"name": displayName(username, chatID)})
		return Reply{
			Text:    welcome + "\n" + e.t(lang, "menu_prompt", nil),
			Buttons: e.menuButtons(lang),
		}, nil
	case "/cancel":
		e.setState(chatID, StateMenu)
		return Reply{
			Text:    e.t(lang, "cancelled", nil) + "\n" + e.t(lang, "menu_prompt", nil),
			Buttons: e.menuButtons(lang),
		}, nil
	case "/users":
		return e.adminOverview(ctx, chatID, lang)
	}

	switch e.state(chatID) {
	case StateChoosingLanguage:
		return e.handleLanguageChoice(ctx, chatID, lang, text)
	case StateAwaitingNumber:
		return e.handleNumber(chatID, lang, text)
	case StateAwaitingDetect:
		return e.handleDetect(chatID, lang, text)
	case StateAwaitingExpression:
		return e.handleExpression(chatID, lang, text)
	default:
		return e.handleMenu(chatID, lang, text)
	}
}

func (e *Engine) handleMenu(chatID int64, lang, text string) (Reply, error) {
	switch text {
	case e.t(lang, "btn_convert_number", nil):
		e.setState(chatID, StateAwaitingNumber)
		return Reply{Text: e.t(lang, "ask_number", nil)}, nil
	case e.t(lang, "btn_detect_number", nil):
		e.setState(chatID, StateAwaitingDetect)
		return Reply{Text: e.t(lang, "ask_detect", nil)}, nil
	case e.t(lang, "btn_algo_pascal", nil):
		e.setState(chatID, StateAwaitingExpression)
		return Reply{Text: e.t(lang, "ask_expression", nil)}, nil
	case e.t(lang, "btn_change_language", nil):
		e.setState(chatID, StateChoosingLanguage)
		return Reply{Text: e.t(lang, "choose_language", nil), Buttons: e.languageButtons()}, nil
	case e.t(lang, "btn_developer", nil):
		return Reply{Text: e.t(lang, "developer", nil), Buttons: e.menuButtons(lang)}, nil
	case e.t(lang, "btn_back", nil):
		return Reply{Text: e.t(lang, "menu_prompt", nil), Buttons: e.menuButtons(lang)}, nil
	default:
		return Reply{
			Text:    e.t(lang, "start_hint", nil) + "\n" + e.t(lang, "menu_prompt", nil),
			Buttons: e.menuButtons(lang),
		}, nil
	}
}

func (e *Engine) handleLanguageChoice(ctx context.Context, chatID int64, lang, text string) (Reply, error) {
	chosen := ""
	for _, code := range e.catalog.Languages() {
		if text == code || text == e.catalog.LanguageName(code) {
			chosen = code
			break
		}
	}
	if chosen == "" {
		return Reply{Text: e.t(lang, "choose_language", nil), Buttons: e.languageButtons()}, nil
	}

	if err := e.users.SetLanguage(ctx, chatID, chosen); err != nil {
		return Reply{}, err
	}
	e.setState(chatID, StateMenu)
	return Reply{
		Text:    e.t(chosen, "menu_prompt", nil),
		Buttons: e.menuButtons(chosen),
	}, nil
}

func (e *Engine) handleNumber(chatID int64, lang, text string) (Reply, error) {
	value, ok := new(big.Int).SetString(strings.TrimSpace(text), 10)
	if !ok {
		return Reply{Text: e.t(lang, "invalid_number", nil)}, nil
	}

	res := numeral.ConvertToBases(value)
	e.setState(chatID, StateMenu)
	return Reply{
		Text: e.t(lang, "number_result", map[string]string{
			"decimal":     res.Decimal,
			"binary":      res.Binary,
			"octal":       res.Octal,
			"hexadecimal": res.Hexadecimal,
		}),
		Buttons: e.menuButtons(lang),
	}, nil
}

func (e *Engine) handleDetect(chatID int64, lang, text string) (Reply, error) {
	value, base, err := numeral.Detect(text)
	if err != nil {
		return Reply{Text: e.t(lang, "invalid_detect", nil)}, nil
	}

	res := numeral.ConvertToBases(value)
	e.setState(chatID, StateMenu)
	return Reply{
		Text: e.t(lang, "detect_result", map[string]string{
			"base_label":  e.catalog.BaseName(lang, int(base)),
			"decimal":     res.Decimal,
			"binary":      res.Binary,
			"octal":       res.Octal,
			"hexadecimal": res.Hexadecimal,
		}),
		Buttons: e.menuButtons(lang),
	}, nil
}

func (e *Engine) handleExpression(chatID int64, lang, text string) (Reply, error) {
	snippets, err := codegen.Compile(text, codegen.DefaultAlgoName, codegen.DefaultPascalName)
	if err != nil {
		return Reply{Text: e.t(lang, "invalid_expression", nil)}, nil
	}

	e.setState(chatID, StateMenu)
	return Reply{
		Text:    "ALGO:\n" + snippets.Algo + "\n\nPASCAL:\n" + snippets.Pascal,
		Buttons: e.menuButtons(lang),
	}, nil
}

func (e *Engine) adminOverview(ctx context.Context, chatID int64, lang string) (Reply, error) {
	admin, err := e.users.IsAdmin(ctx, chatID)
	if err != nil {
		return Reply{}, err
	}
	if !admin {
		return Reply{Text: e.t(lang, "admin_denied", nil)}, nil
	}

	count, err := e.users.CountUsers(ctx)
	if err != nil {
		return Reply{}, err
	}
	if count == 0 {
		return Reply{Text: e.t(lang, "admin_no_users", nil)}, nil
	}
	users, err := e.users.ListUsers(ctx)
	if err != nil {
		return Reply{}, err
	}

	lines := []string{
		e.t(lang, "admin_overview", nil),
		e.t(lang, "admin_user_count", map[string]string{"count": fmt.Sprint(count)}),
	}
	for _, u := range users {
		lines = append(lines, e.t(lang, "admin_user_line", map[string]string{
			"name":     displayName(u.Username, u.ChatID),
			"id":       fmt.Sprint(u.ChatID),
			"language": u.Language,
		}))
	}
	return Reply{Text: strings.Join(lines, "\n")}, nil
}

// menuButtons returns the localized main-menu keyboard.
func (e *Engine) menuButtons(lang string) []string {
	return []string{
		e.t(lang, "btn_convert_number", nil),
		e.t(lang, "btn_detect_number", nil),
		e.t(lang, "btn_algo_pascal", nil),
		e.t(lang, "btn_change_language", nil),
		e.t(lang, "btn_developer", nil),
	}
}

// languageButtons returns each language's self-described name.
func (e *Engine) languageButtons() []string {
	codes := e.catalog.Languages()
	buttons := make([]string, len(codes))
	for i, code := range codes {
		buttons[i] = e.catalog.LanguageName(code)
	}
	return buttons
}

func (e *Engine) t(lang, key string, args map[string]string) string {
	return e.catalog.T(lang, key, args)
}

func (e *Engine) state(chatID int64) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.states[chatID]; ok {
		return s
	}
	return StateMenu
}

func (e *Engine) setState(chatID int64, s State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.states[chatID] = s
}

func displayName(username string, chatID int64) string {
	if username != "" {
		return username
	}
	return fmt.Sprint(chatID)
}
