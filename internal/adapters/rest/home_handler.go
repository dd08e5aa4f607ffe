package rest

import "net/http"

// Статическая страница документации API. Блок Database Info подтягивает
// /health на клиенте.
const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>property-search-service API</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; background: #f5f5f5; }
        .container { max-width: 800px; margin: 0 auto; background: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        h1 { color: #2c3e50; border-bottom: 3px solid #3498db; padding-bottom: 10px; }
        .endpoint { background: #ecf0f1; padding: 15px; margin: 15px 0; border-left: 4px solid #3498db; }
        .method { background: #3498db; color: white; padding: 4px 8px; border-radius: 4px; font-size: 12px; }
        pre { background: #2c3e50; color: #ecf0f1; padding: 15px; border-radius: 4px; overflow-x: auto; }
        .status { color: #27ae60; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <h1>property-search-service</h1>
        <p><span class="status">&#10003; ONLINE</span> | PostgreSQL with PostGIS API</p>

        <h2>API Endpoints</h2>

        <div class="endpoint">
            <p><span class="method">GET</span> <strong>/health</strong></p>
            <p>Health check and database connectivity status</p>
        </div>

        <div class="endpoint">
            <p><span class="method">GET</span> <strong>/api/properties/nearby</strong></p>
            <p>Find properties within radius of coordinates</p>
            <pre>?lat=37.7749&amp;lng=-122.4194&amp;radius=1000&amp;limit=10</pre>
        </div>

        <div class="endpoint">
            <p><span class="method">GET</span> <strong>/api/properties/search</strong></p>
            <p>Advanced property search with filters</p>
            <pre>?price_min=500000&amp;price_max=1000000&amp;bedrooms=3&amp;property_type=house</pre>
        </div>

        <div class="endpoint">
            <p><span class="method">POST</span> <strong>/api/properties</strong></p>
            <p>Add new property listing</p>
        </div>

        <h2>Database Info</h2>
        <pre id="dbInfo">Loading database information...</pre>

        <script>
            fetch('/health')
                .then(response => response.json())
                .then(data => {
                    document.getElementById('dbInfo').textContent = JSON.stringify(data, null, 2);
                })
                .catch(error => {
                    document.getElementById('dbInfo').textContent = 'Error loading database info: ' + error;
                });
        </script>
    </div>
</body>
</html>
`

// Home обрабатывает GET /
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(homePage))
}
