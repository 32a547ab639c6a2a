package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listDocumentsTool defines the list_documents MCP tool.
var listDocumentsTool = mcp.NewTool("list_documents",
	mcp.WithDescription("List the documents in the viewer's navigation catalog, in display order."),
	mcp.WithString("query",
		mcp.Description("Only list documents whose display name contains this text (case-insensitive)"),
	),
)

// readDocumentTool defines the read_document MCP tool.
var readDocumentTool = mcp.NewTool("read_document",
	mcp.WithDescription("Get the raw markdown of a document."),
	mcp.WithString("doc",
		mcp.Required(),
		mcp.Description("Document filename, e.g. QUICK_START.md"),
	),
)

// renderDocumentTool defines the render_document MCP tool.
var renderDocumentTool = mcp.NewTool("render_document",
	mcp.WithDescription("Render a document to HTML the way the viewer page shows it, including the page title."),
	mcp.WithString("doc",
		mcp.Description("Document filename; defaults to the first catalog entry"),
	),
)
