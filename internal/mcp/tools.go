package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/daybook/internal/export"
	"github.com/gorewood/daybook/internal/journal"
)

// --- Log tool ---

// LogInput is the input for the log tool.
type LogInput struct {
	Title   string `json:"title"             jsonschema:"entry title; tags may appear inline"`
	Body    string `json:"body,omitempty"    jsonschema:"entry body text"`
	Starred bool   `json:"starred,omitempty" jsonschema:"mark the entry as starred"`
	Time    string `json:"time,omitempty"    jsonschema:"entry time in the journal's time layout (default: now)"`
}

// LogOutput is the output for the log tool.
type LogOutput struct {
	Date  string   `json:"date"            jsonschema:"formatted entry date"`
	Title string   `json:"title"           jsonschema:"stored entry title"`
	Tags  []string `json:"tags,omitempty"  jsonschema:"tags extracted from the entry"`
	Todos int      `json:"todos"           jsonschema:"number of todos extracted from the entry"`
}

func handleLog(store Store) mcp.ToolHandlerFor[LogInput, LogOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LogInput) (*mcp.CallToolResult, LogOutput, error) {
		if input.Title == "" {
			return nil, LogOutput{}, fmt.Errorf("title must not be empty")
		}

		j, err := store.Load()
		if err != nil {
			return nil, LogOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		var date time.Time
		if input.Time != "" {
			date, err = time.Parse(j.Config.TimeFormat, input.Time)
			if err != nil {
				return nil, LogOutput{}, fmt.Errorf("parsing time %q: %w", input.Time, err)
			}
		}

		entry := journal.NewEntry(j.Config, date, input.Title, input.Body, input.Starred)
		j.Add(entry)

		if err := store.Save(j); err != nil {
			return nil, LogOutput{}, fmt.Errorf("saving journal: %w", err)
		}

		return nil, LogOutput{
			Date:  entry.Date.Format(j.Config.TimeFormat),
			Title: entry.Title,
			Tags:  entry.UniqueTags(),
			Todos: len(entry.Todos),
		}, nil
	}
}

// --- Query tool ---

// QueryInput is the input for the query tool.
type QueryInput struct {
	Last  int      `json:"last,omitempty"  jsonschema:"return only the last N matching entries"`
	Since string   `json:"since,omitempty" jsonschema:"only entries on or after this date (YYYY-MM-DD)"`
	Until string   `json:"until,omitempty" jsonschema:"only entries on or before this date (YYYY-MM-DD)"`
	Tags  []string `json:"tags,omitempty"  jsonschema:"only entries carrying at least one of these tags"`
	Short bool     `json:"short,omitempty" jsonschema:"return title lines only"`
}

// QueryEntry is one matched entry in query output.
type QueryEntry struct {
	Text  string            `json:"text"  jsonschema:"pretty-printed entry"`
	Entry journal.EntryJSON `json:"entry" jsonschema:"structured entry view"`
}

// QueryOutput is the output for the query tool.
type QueryOutput struct {
	Count   int          `json:"count"             jsonschema:"number of matching entries"`
	Entries []QueryEntry `json:"entries,omitempty" jsonschema:"matching entries in journal order"`
}

func handleQuery(store Store) mcp.ToolHandlerFor[QueryInput, QueryOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, QueryOutput, error) {
		j, err := store.Load()
		if err != nil {
			return nil, QueryOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		entries := j.Entries
		if input.Since != "" {
			cutoff, err := time.Parse("2006-01-02", input.Since)
			if err != nil {
				return nil, QueryOutput{}, fmt.Errorf("parsing since %q: %w", input.Since, err)
			}
			entries = journal.FilterSince(entries, cutoff)
		}
		if input.Until != "" {
			cutoff, err := time.Parse("2006-01-02", input.Until)
			if err != nil {
				return nil, QueryOutput{}, fmt.Errorf("parsing until %q: %w", input.Until, err)
			}
			entries = journal.FilterUntil(entries, cutoff)
		}
		entries = journal.FilterByTags(entries, journal.NormalizeTags(input.Tags, j.Config.TagSymbols))
		entries = journal.LastN(entries, input.Last)

		out := QueryOutput{Count: len(entries)}
		for _, e := range entries {
			out.Entries = append(out.Entries, QueryEntry{
				Text:  e.Pprint(j.Config, input.Short),
				Entry: e.JSONView(),
			})
		}
		return nil, out, nil
	}
}

// --- Tags tool ---

// TagsInput is the input for the tags tool (no parameters needed).
type TagsInput struct{}

// TagCount is one tag with its entry count.
type TagCount struct {
	Tag   string `json:"tag"   jsonschema:"tag text including its prefix symbol"`
	Count int    `json:"count" jsonschema:"number of entries containing the tag"`
}

// TagsOutput is the output for the tags tool.
type TagsOutput struct {
	Tags    []TagCount `json:"tags,omitempty" jsonschema:"tags in first-appearance order"`
	Listing string     `json:"listing"        jsonschema:"human-readable tag listing"`
}

func handleTags(store Store) mcp.ToolHandlerFor[TagsInput, TagsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ TagsInput) (*mcp.CallToolResult, TagsOutput, error) {
		j, err := store.Load()
		if err != nil {
			return nil, TagsOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		out := TagsOutput{Listing: export.ToTagList(j)}
		for _, tc := range export.TagCounts(j) {
			out.Tags = append(out.Tags, TagCount{Tag: tc.Tag, Count: tc.Count})
		}
		return nil, out, nil
	}
}

// --- Todos tool ---

// TodosInput is the input for the todos tool (no parameters needed).
type TodosInput struct{}

// TodosOutput is the output for the todos tool.
type TodosOutput struct {
	Pending   []string `json:"pending,omitempty"   jsonschema:"display lines of pending todos"`
	Completed []string `json:"completed,omitempty" jsonschema:"display lines of completed todos"`
	Listing   string   `json:"listing"             jsonschema:"human-readable todo listing"`
}

func handleTodos(store Store) mcp.ToolHandlerFor[TodosInput, TodosOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ TodosInput) (*mcp.CallToolResult, TodosOutput, error) {
		j, err := store.Load()
		if err != nil {
			return nil, TodosOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		out := TodosOutput{Listing: export.ToTodoList(j)}
		for _, t := range export.Todos(j) {
			if t.Complete {
				out.Completed = append(out.Completed, t.ItemForm())
			} else {
				out.Pending = append(out.Pending, t.ItemForm())
			}
		}
		return nil, out, nil
	}
}

// --- Export tool ---

// ExportInput is the input for the export tool.
type ExportInput struct {
	Format string `json:"format" jsonschema:"export format: json, md, or txt"`
}

// ExportOutput is the output for the export tool.
type ExportOutput struct {
	Format  string `json:"format"  jsonschema:"format that was rendered"`
	Content string `json:"content" jsonschema:"aggregated journal content"`
}

func handleExport(store Store) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		j, err := store.Load()
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("loading journal: %w", err)
		}

		content, err := export.Export(j, input.Format, "")
		if err != nil {
			return nil, ExportOutput{}, err
		}
		return nil, ExportOutput{Format: input.Format, Content: content}, nil
	}
}
