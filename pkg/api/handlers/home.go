package handlers

import "net/http"

// codeReference links to the published building code edition.
const codeReference = "https://dm.gov.ae/wp-content/uploads/2021/12/Dubai%20Building%20Code_English_2021%20Edition_compressed.pdf"

const homePage = `<html>
  <head>
    <title>Plancheck</title>
    <style>
      body {
        background-color: #b30000;
        color: white;
        font-family: Arial, sans-serif;
        text-align: center;
        padding: 60px;
      }
      h1 { font-size: 2.4em; }
      p { font-size: 1.1em; }
      a {
        background-color: white;
        color: #b30000;
        text-decoration: none;
        padding: 10px 15px;
        border-radius: 5px;
        font-weight: bold;
      }
      a:hover { background-color: #f5f5f5; }
      .endpoint {
        background: rgba(255,255,255,0.1);
        margin: 20px auto;
        max-width: 600px;
        padding: 20px;
        border-radius: 8px;
      }
    </style>
  </head>
  <body>
    <h1>Plancheck</h1>
    <p>Dubai Building Code Compliance Assistant</p>
    <div class="endpoint">
      <h3>Analyze Building Plan</h3>
      <p><b>POST</b> /analyze</p>
      <p>Uploads a PDF plan and checks it against the Dubai Building Code 2021 and Permit Checklist.</p>
    </div>
    <div class="endpoint">
      <h3>AI Chat Assistant</h3>
      <p><b>POST</b> /chat</p>
      <p>Ask about DBC rules, ramp slopes, accessibility, or checklist compliance.</p>
    </div>
    <a href="` + codeReference + `" target="_blank">
      View Dubai Building Code 2021
    </a>
  </body>
</html>
`

// HomeHandler serves the HTML landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new landing page handler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// ServeHTTP implements http.Handler.
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(homePage))
}
