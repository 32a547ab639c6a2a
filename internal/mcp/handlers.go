package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/docviewer/internal/viewer"
)

// handleListDocuments lists the catalog, optionally filtered like the nav search.
func (s *Server) handleListDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c := s.controller.Catalog()
	items := viewer.RenderNav(c, "")
	viewer.ApplyFilter(request.GetString("query", ""), items)

	var b strings.Builder
	for _, item := range items {
		if item.Hidden {
			continue
		}
		fmt.Fprintf(&b, "- %s (%s)\n", item.Label, item.Filename)
	}

	if b.Len() == 0 {
		return mcp.NewToolResultText("No documents match."), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleReadDocument returns the raw text of a document.
func (s *Server) handleReadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := request.RequireString("doc")
	if err != nil || doc == "" {
		return mcp.NewToolResultError("missing required parameter: doc"), nil
	}

	result := s.loader.Load(ctx, doc)
	if !result.OK {
		return mcp.NewToolResultError(fmt.Sprintf("could not load %s: %s", doc, result.Reason)), nil
	}
	return mcp.NewToolResultText(result.Text), nil
}

// handleRenderDocument runs one viewer cycle and returns the title and HTML.
func (s *Server) handleRenderDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	search := ""
	if doc := request.GetString("doc", ""); doc != "" {
		search = "?" + url.Values{viewer.DocParam: {doc}}.Encode()
	}

	page := &viewer.Page{}
	state := s.controller.Run(ctx, search, page)

	text := fmt.Sprintf("Title: %s\n\n%s", page.Title(), page.Content())
	if state == viewer.Errored {
		return mcp.NewToolResultError(text), nil
	}
	return mcp.NewToolResultText(text), nil
}
