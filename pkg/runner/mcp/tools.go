package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListEntriesTool(srv, svc)
	registerSelectedEntriesTool(srv, svc)
	registerTreeTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerEditTitleTool(srv, svc)
	registerEditContentTool(srv, svc)
	registerAddNextTool(srv, svc)
	registerAddBoxTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerSelectDateTool(srv, svc)
	registerSelectLevelTool(srv, svc)
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List every diary entry in insertion order."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries := svc.ListEntries(ctx)
		return toJSONResult(map[string]any{
			"count":   len(entries),
			"entries": entries,
		})
	})
}

func registerSelectedEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"entries_for_selected_date",
		mcp.WithDescription("Return the selection and the entries of the selected day, newest first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Selection(ctx))
	})
}

func registerTreeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_tree",
		mcp.WithDescription("Return the entries grouped by year and month, newest first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.Tree(ctx))
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry by ID."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerEditTitleTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_title",
		mcp.WithDescription("Replace the title of an entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("New title. An empty string clears it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.EditTitle(ctx, args.ID, args.Title)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerEditContentTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_content",
		mcp.WithDescription("Replace the content of an entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("New content. An empty string clears it."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID      string `json:"id"`
			Content string `json:"content"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.EditContent(ctx, args.ID, args.Content)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddNextTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_next_entry",
		mcp.WithDescription("Create an empty entry on the year, month or day after the selection and select it."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := svc.AddNext(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerAddBoxTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_box",
		mcp.WithDescription("Add another empty entry on the selected day."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toJSONResult(svc.AddBox(ctx))
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry. The last entry of a day cannot be deleted."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier."),
		),
		mcp.WithString("date",
			mcp.Description("Day the entry belongs to (YYYY-MM-DD). Defaults to the entry's own day."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := svc.Delete(ctx, request.GetString("date", ""), id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerSelectDateTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_date",
		mcp.WithDescription("Move the selection to a day."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Day to select (YYYY-MM-DD)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sel, err := svc.SelectDate(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sel)
	})
}

func registerSelectLevelTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"select_level",
		mcp.WithDescription("Change the granularity add_next_entry advances by."),
		mcp.WithString("level",
			mcp.Required(),
			mcp.Description("Selection level."),
			mcp.Enum("year", "month", "date"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		level, err := request.RequireString("level")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sel, err := svc.SelectLevel(ctx, level)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sel)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
