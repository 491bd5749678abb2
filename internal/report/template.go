package report

// Element ids and classes shared by the template, the embedded script and
// the Go filter model.
const (
	searchInputID  = "searchInput"
	clearButtonID  = "clearSearch"
	userListID     = "userList"
	noResultsID    = "noResults"
	rowClass       = "user-item"
	nameClass      = "user-name"
	countClass     = "badge-count"
	noResultsLabel = "No users match your search."
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    body { font-family: system-ui, sans-serif; background-color: #f8f9fa; margin: 0; padding: 20px; }
    .container { max-width: 1100px; margin: 0 auto; }
    .header-section { background: #fff; border-radius: 10px; padding: 25px; margin-bottom: 25px; box-shadow: 0 2px 10px rgba(0,0,0,0.05); }
    .page-title { font-weight: 600; margin: 0; }
    .badge-count { background: #6c757d; color: #fff; border-radius: 6px; padding: 2px 10px; font-size: 1rem; vertical-align: middle; }
    .generated { color: #6c757d; }
    .notice { background: #cfe2ff; border-radius: 6px; padding: 12px 16px; margin-top: 16px; }
    .search-section { display: flex; gap: 8px; max-width: 520px; margin: 0 auto 25px; }
    .search-section input { flex: 1; padding: 6px 10px; }
    #userList { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 15px; }
    .user-item { background: #fff; border-radius: 6px; padding: 15px; box-shadow: 0 2px 5px rgba(0,0,0,0.05); }
    .user-link { color: #0d6efd; text-decoration: none; }
    .user-link:hover { text-decoration: underline; }
    #noResults { grid-column: 1 / -1; text-align: center; padding: 40px 0; }
    .app-footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #dee2e6; font-size: 0.85rem; color: #6c757d; text-align: center; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header-section">
      <h1 class="page-title">{{.Title}} <span class="badge-count" data-count="{{.Count}}">{{.CountLabel}}</span></h1>
      {{- if .GeneratedOn}}
      <div class="generated">Generated on {{.GeneratedOn}}</div>
      {{- end}}
      <div class="notice">These are the accounts you follow that don't follow you back.</div>
    </div>

    <div class="search-section">
      <input type="text" id="searchInput" placeholder="Search users..." autocomplete="off">
      <button type="button" id="clearSearch">Clear</button>
    </div>

    <div id="userList">
      {{- range .Rows}}
      <div class="user-item">
        <a href="{{.URL}}" target="_blank" rel="noopener" class="user-link"><span class="user-name">{{.Username}}</span></a>
      </div>
      {{- end}}
    </div>

    <footer class="app-footer">
      <p>Generated by {{.Generator}}. This report is not endorsed by nor affiliated with Instagram or Meta in any way.</p>
    </footer>
  </div>

  <script>
    (function() {
      var searchInput = document.getElementById('searchInput');
      var clearSearch = document.getElementById('clearSearch');
      var userList = document.getElementById('userList');
      var userItems = document.querySelectorAll('.user-item');

      function filterUsers(searchTerm) {
        var visibleCount = 0;
        userItems.forEach(function(item) {
          var username = item.querySelector('.user-name').textContent.toLowerCase();
          if (username.indexOf(searchTerm) !== -1) {
            item.style.display = '';
            visibleCount++;
          } else {
            item.style.display = 'none';
          }
        });

        var noResultsEl = document.getElementById('noResults');
        if (visibleCount === 0 && searchTerm !== '') {
          if (!noResultsEl) {
            noResultsEl = document.createElement('div');
            noResultsEl.id = 'noResults';
            noResultsEl.textContent = 'No users match your search.';
            userList.appendChild(noResultsEl);
          }
        } else if (noResultsEl) {
          noResultsEl.remove();
        }
      }

      searchInput.addEventListener('input', function() {
        filterUsers(this.value.toLowerCase());
      });
      clearSearch.addEventListener('click', function() {
        searchInput.value = '';
        filterUsers('');
      });
    })();
  </script>
</body>
</html>
`
