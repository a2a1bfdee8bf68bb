package agent

import (
	"context"
	"fmt"

	"github.com/its-camilo/smartfi"
	"github.com/its-camilo/smartfi/docs"
	"github.com/its-camilo/smartfi/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation. It
// can consult every other expert as a function call.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand and improve his personal finances:
			his accounts, his net worth, how it evolved, and what it could become.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request. The user will assume you already looked at
			his accounts, so check with the Analyst first to know what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach creates the expert grounded on Google Search, for anything
// that needs fresh outside information.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a personal finance coach.
		Very well aware of financial products, banks, interest rates and the
		Colombian and US markets, including the latest news and the USD/COP rate.
		Ask the Coach whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance. You can search and find anything
			related to banks, rates, inflation, financial products and markets.
			You leverage Google Search to ground your assertions in a solid truth,
			and you know how to relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of reading the user's book.
// It answers through function calls over the loaded data; loadBook is
// called on every question so the answers follow the files.
func NewAnalyst(loadBook func() (*smartfi.Book, error)) *Expert {
	lib := analystFunctions(loadBook)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He has read-only access to the user's accounts,
		groups and transaction ledger. He can compute the present valuation, the
		net worth history, and the performance reports with projections.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's personal accounts.
				You know how to use the Tools to extract relevant information about
				the user's accounts and wealth. You are part of a team of experts;
				they might ask approximative questions, figure out what they meant.

				Use the available tools to get:
				  - the list of accounts and groups
				  - the present valuation (net worth, liquidity, buying power)
				  - the day-by-day net worth history
				  - returns over a window, with projections
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// failure builds the error form of a function response.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// success builds the output form of a function response.
func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func analystFunctions(loadBook func() (*smartfi.Book, error)) []*Func {
	accounts := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Accounts",
			Description: `Accounts lists every account with its group, type, currency,
			balance, credit limit and tag, in display order.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted listing of all accounts, one section per group.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := loadBook()
			if err != nil {
				return failure(id, "Accounts", err)
			}
			return success(id, "Accounts", renderer.RenderAccounts(renderer.NewAccounts(b)))
		},
	}

	valuation := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Valuation",
			Description: `Valuation computes the present totals: assets, liabilities,
			net worth, liquidity and buying power.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"currency": {
						Type:        genai.TypeString,
						Description: "The currency to value everything in, COP or USD. COP is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the present valuation.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			cur, err := parseCurrency(args)
			if err != nil {
				return failure(id, "Valuation", err)
			}
			b, err := loadBook()
			if err != nil {
				return failure(id, "Valuation", err)
			}
			v := b.Valuation(cur)
			return success(id, "Valuation", renderer.RenderSummary(renderer.NewSummary(smartfi.Today(), v)))
		},
	}

	history := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History reconstructs the day-by-day net worth, liquidity and
			buying power, from a starting date to today.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"from": {
						Type: genai.TypeString,
						Description: `The first day of the series. The project start is the default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
					"currency": {
						Type:        genai.TypeString,
						Description: "The currency to value the series in, COP or USD. COP is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table with one row per day.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			cur, err := parseCurrency(args)
			if err != nil {
				return failure(id, "History", err)
			}
			from, err := parseDate(args, "from")
			if err != nil {
				return failure(id, "History", err)
			}
			b, err := loadBook()
			if err != nil {
				return failure(id, "History", err)
			}
			points := b.History(from, cur)
			return success(id, "History", renderer.RenderHistory(renderer.NewHistory(points, cur)))
		},
	}

	returns := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Returns",
			Description: `Returns computes the performance over a window ending today:
			the plain return, the equivalent annual rate, and the projected
			valuations at 3, 6 and 12 months.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"window": {
						Type:        genai.TypeString,
						Description: "The measurement window: 1m, 3m, 6m, 12m or all. 1m is the default.",
					},
					"tag": {
						Type:        genai.TypeString,
						Description: "Restrict the report to accounts carrying this tag.",
					},
					"currency": {
						Type:        genai.TypeString,
						Description: "The currency to value the report in, COP or USD. COP is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted performance report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			cur, err := parseCurrency(args)
			if err != nil {
				return failure(id, "Returns", err)
			}
			window := smartfi.LastMonth
			if w, ok := args["window"].(string); ok && w != "" {
				window, err = smartfi.ParseWindow(w)
				if err != nil {
					return failure(id, "Returns", err)
				}
			}
			scope := smartfi.Scope{}
			if tag, ok := args["tag"].(string); ok {
				scope.Tag = tag
			}
			b, err := loadBook()
			if err != nil {
				return failure(id, "Returns", err)
			}
			report := b.Performance(scope, window, cur)
			return success(id, "Returns", renderer.RenderReturns(renderer.NewReturns(report)))
		},
	}

	return []*Func{accounts, valuation, history, returns}
}

func parseCurrency(args map[string]any) (smartfi.Currency, error) {
	icur, ok := args["currency"]
	if !ok {
		return smartfi.COP, nil
	}
	scur, ok := icur.(string)
	if !ok {
		return smartfi.COP, fmt.Errorf("argument 'currency' is not a string as expected but %T", icur)
	}
	if scur == "" {
		return smartfi.COP, nil
	}
	return smartfi.ParseCurrency(scur)
}

func parseDate(args map[string]any, key string) (smartfi.Date, error) {
	idate, ok := args[key]
	if !ok {
		return smartfi.Date{}, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return smartfi.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", key, idate)
	}
	if sdate == "" {
		return smartfi.Date{}, nil
	}

	date, err := smartfi.ParseDate(sdate)
	if err != nil {
		return smartfi.Date{}, fmt.Errorf("argument %q must be a valid date, got %q. Below is the doc about the date format\n\n%s", key, sdate, must(docs.GetTopic("dates")))
	}
	return date, nil
}
