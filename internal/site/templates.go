package site

// pageTemplate is the html/template for the viewer page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.ViewerPath}}viewer.css">
  <link rel="stylesheet" href="{{.ViewerPath}}highlight.css">
</head>
<body data-state="{{.State}}" data-seq="{{.Seq}}">
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">{{.SiteName}}</h2>
      <input type="text" id="search-input" placeholder="Search docs..." autocomplete="off" value="{{.Query}}">
    </div>
    <div class="doc-nav" id="doc-nav">
{{.Nav}}    </div>
  </nav>
  <main class="content">
    <div class="top-bar">
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">&#9680;</button>
    </div>
    <article class="page-content" id="doc-content">
      {{.Content}}
    </article>
  </main>
  <script src="{{.ViewerPath}}viewer.js"></script>
</body>
</html>`

// cssContent is the stylesheet of the viewer page.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f6f8fa;
  --text: #1f2328;
  --text-muted: #656d76;
  --border: #d0d7de;
  --accent: #0969da;
  --accent-bg: #ddf4ff;
  --error: #cf222e;
  --error-bg: #ffebe9;
  --code-bg: #f6f8fa;
  --sidebar-width: 260px;
}

[data-theme="dark"] {
  --bg: #0d1117;
  --bg-sidebar: #161b22;
  --text: #e6edf3;
  --text-muted: #8d96a0;
  --border: #30363d;
  --accent: #4493f8;
  --accent-bg: #121d2f;
  --error: #f85149;
  --error-bg: #25171c;
  --code-bg: #161b22;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  display: flex;
  min-height: 100vh;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

.sidebar {
  width: var(--sidebar-width);
  flex-shrink: 0;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  padding: 1rem;
  position: sticky;
  top: 0;
  height: 100vh;
  overflow-y: auto;
}

.project-title { margin: 0 0 0.75rem; font-size: 1.1rem; }

#search-input {
  width: 100%;
  padding: 0.4rem 0.6rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
  margin-bottom: 1rem;
}

.doc-nav-item {
  display: block;
  padding: 0.35rem 0.6rem;
  border-radius: 6px;
  color: var(--text);
  text-decoration: none;
}

.doc-nav-item:hover { background: var(--accent-bg); }
.doc-nav-item.active { background: var(--accent-bg); color: var(--accent); font-weight: 600; }

.content { flex: 1; min-width: 0; padding: 1rem 2rem 3rem; }

.top-bar { display: flex; justify-content: flex-end; }

.theme-toggle {
  border: 1px solid var(--border);
  background: transparent;
  color: var(--text);
  border-radius: 6px;
  cursor: pointer;
  font-size: 1.1rem;
}

.page-content { max-width: 900px; }
.page-content pre { background: var(--code-bg); padding: 1rem; overflow-x: auto; border-radius: 6px; }
.page-content code { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-size: 0.9em; }
.page-content table { border-collapse: collapse; }
.page-content th, .page-content td { border: 1px solid var(--border); padding: 0.3rem 0.7rem; }

.loading { color: var(--text-muted); font-style: italic; padding: 2rem 0; }

.error {
  border: 1px solid var(--error);
  background: var(--error-bg);
  border-radius: 6px;
  padding: 1rem 1.5rem;
}

.error h2 { color: var(--error); margin-top: 0; }
`

// jsContent enhances the server-rendered page: the nav search filters
// live, and nav clicks go through the /ws/viewer channel instead of a full
// page load. Without a socket the links behave as plain navigations.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var nav = document.getElementById("doc-nav");
  var content = document.getElementById("doc-content");
  var searchInput = document.getElementById("search-input");

  // ===== Theme toggle =====
  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("docviewer-theme", theme); } catch(e) {}
  }

  try {
    var stored = localStorage.getItem("docviewer-theme");
    if (stored) setTheme(stored);
  } catch(e) {}

  var themeToggle = document.getElementById("theme-toggle");
  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  // ===== Nav filter =====
  function applyFilter() {
    if (!searchInput || !nav) return;
    var query = searchInput.value.toLowerCase();
    nav.querySelectorAll(".doc-nav-item").forEach(function(item) {
      var text = item.textContent.toLowerCase();
      item.style.display = text.indexOf(query) !== -1 ? "block" : "none";
    });
  }

  if (searchInput) searchInput.addEventListener("input", applyFilter);

  // ===== Live navigation =====
  var socket = null;

  function escapeHTML(s) {
    return s.replace(/[&<>"']/g, function(c) {
      return { "&": "&amp;", "<": "&lt;", ">": "&gt;", '"': "&#34;", "'": "&#39;" }[c];
    });
  }

  function renderNav(items) {
    nav.innerHTML = items.map(function(item) {
      return '<a href="' + escapeHTML(item.href) + '" class="doc-nav-item' +
        (item.active ? " active" : "") + '">' + escapeHTML(item.label) + "</a>";
    }).join("\n");
    applyFilter();
  }

  function onEvent(ev) {
    if (ev.type === "error") {
      console.warn("docviewer:", ev.error);
      return;
    }
    document.body.setAttribute("data-state", ev.state);
    document.body.setAttribute("data-seq", ev.seq);
    if (ev.nav) renderNav(ev.nav);
    if (ev.state !== "resolving") content.innerHTML = ev.content || "";
    if (ev.title) document.title = ev.title;
  }

  function navigate(search) {
    if (!socket || socket.readyState !== WebSocket.OPEN) return false;
    socket.send(JSON.stringify({ type: "navigate", search: search }));
    return true;
  }

  if (nav && content && "WebSocket" in window) {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    socket = new WebSocket(proto + "//" + location.host + "/ws/viewer");
    socket.onmessage = function(msg) {
      try { onEvent(JSON.parse(msg.data)); } catch(e) {}
    };
    socket.onclose = function() { socket = null; };

    nav.addEventListener("click", function(e) {
      var link = e.target.closest(".doc-nav-item");
      if (!link) return;
      var url = new URL(link.getAttribute("href"), location.href);
      if (!navigate(url.search)) return;
      e.preventDefault();
      history.pushState(null, "", url.href);
    });

    window.addEventListener("popstate", function() {
      if (!navigate(location.search)) location.reload();
    });
  }
})();
`
