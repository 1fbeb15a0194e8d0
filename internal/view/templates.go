package view

import "html/template"

var caseCardsTemplate = template.Must(template.New("caseCards").Parse(`{{- if not .Cards -}}
<div class="no-cases" id="noCasesMessage"><p id="noCasesText">{{.Empty}}</p></div>
{{- else -}}
{{- range .Cards}}
<div class="case-card" data-case-id="{{.ID}}">
  <div class="case-header">
    <div class="case-status {{if .Resolved}}solved{{else}}pending{{end}}">{{if .Resolved}}&#9989;{{else}}&#128680;{{end}}</div>
    <div class="case-title">
      <h3>{{.Name}}</h3>
      <p>{{.Phone}}</p>
    </div>
    <div class="case-time">{{.Time}}</div>
  </div>
  <div class="case-body">
    <p>&#128205; {{.Address}}</p>
    {{- if .Resolved}}
    <p class="resolved-info">&#9989; Resolved by {{.ResolvedBy}}</p>
    {{- else}}
    <p class="pending-info">&#9203; Requires attention</p>
    {{- end}}
  </div>
  <div class="case-actions">
    <button class="view-btn" data-id="{{.ID}}" data-source="app">View Details</button>
    {{- if not .Resolved}}
    <button class="btn-resolve" data-id="{{.ID}}">Mark Handled</button>
    {{- end}}
  </div>
</div>
{{- end}}
{{- end}}`))

var alertCardsTemplate = template.Must(template.New("alertCards").Parse(`{{- if not .Cards -}}
<div class="no-cases" id="noDeviceAlerts"><p>{{.Empty}}</p></div>
{{- else -}}
{{- range .Cards}}
<div class="case-card" data-alert-id="{{.ID}}">
  <div class="case-header">
    <div class="case-status device-alert">&#128225;</div>
    <div class="case-title">
      <h3>{{.Device}}</h3>
      <p>{{.Message}}</p>
    </div>
    <div class="case-time">{{.Time}}</div>
  </div>
  <div class="case-body">
    <p><strong>Type:</strong> {{.Type}}</p>
    <p><strong>Status:</strong> {{.Status}}</p>
    <p><strong>Location:</strong> {{.Location}}</p>
  </div>
  <div class="case-actions">
    <button class="view-btn" data-id="{{.ID}}" data-source="device">View Details</button>
    <button class="btn-resolve-alert" data-id="{{.ID}}">Mark Handled</button>
  </div>
</div>
{{- end}}
{{- end}}`))

var statsTemplate = template.Must(template.New("stats").Parse(`<div class="stat-card"><span class="stat-number" id="totalCases">{{.Total}}</span><span class="stat-label">Total Cases</span></div>
<div class="stat-card"><span class="stat-number" id="pendingCases">{{.Pending}}</span><span class="stat-label">Pending</span></div>
<div class="stat-card"><span class="stat-number" id="solvedCases">{{.Solved}}</span><span class="stat-label">Solved</span></div>`))

var caseModalTemplate = template.Must(template.New("caseModal").Parse(`<div class="case-details">
  <div class="detail-section">
    <h3>User Information</h3>
    <div class="detail-grid">
      <div class="detail-item"><label>Name:</label><span>{{.Name}}</span></div>
      <div class="detail-item"><label>Phone:</label><span>{{.Phone}}</span></div>
      <div class="detail-item"><label>Age:</label><span>{{.Age}}</span></div>
      <div class="detail-item"><label>Email:</label><span>{{.Email}}</span></div>
    </div>
  </div>
  <div class="detail-section">
    <h3>Location</h3>
    <div class="detail-grid">
      <div class="detail-item full-width"><label>Address:</label><span>{{.Address}}</span></div>
    </div>
  </div>
  <div class="detail-section">
    {{- if .Resolved}}
    <p>Resolved by {{.ResolvedBy}}</p>
    {{- else}}
    <button class="btn-resolve" data-id="{{.ID}}">&#9989; APPROVE &amp; SEND HELP</button>
    {{- end}}
  </div>
</div>`))

var alertModalTemplate = template.Must(template.New("alertModal").Parse(`<div class="case-details">
  <div class="detail-section">
    <h3>IoT Device Alert Details</h3>
    <div class="detail-grid">
      <div class="detail-item"><label>Alert ID:</label><span>{{.View.ID}}</span></div>
      <div class="detail-item"><label>Device:</label><span>{{.View.Device}}</span></div>
      <div class="detail-item"><label>Time:</label><span>{{.View.Time}}</span></div>
    </div>
  </div>
  <div class="detail-section">
    <h3>Message</h3>
    <p>{{.View.Message}}</p>
  </div>
  <div class="detail-section">
    <h3>Raw Data</h3>
    <pre>{{.RawJSON}}</pre>
  </div>
  <div class="detail-section">
    {{- if not .View.Resolved}}
    <button class="btn-resolve-alert" data-id="{{.View.ID}}">&#9989; MARK AS HANDLED</button>
    {{- end}}
  </div>
</div>`))

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Watchdesk - Emergency Dashboard</title>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f4f6f9;color:#222}
header{background:#1a2a4a;color:#fff;padding:16px 24px;display:flex;justify-content:space-between;align-items:center}
header h1{margin:0;font-size:1.3rem}
.degraded-banner{background:#c0392b;color:#fff;padding:8px 24px;font-weight:600}
.stats-row{display:flex;gap:16px;padding:16px 24px}
.stat-card{background:#fff;border-radius:8px;padding:16px 24px;flex:1;text-align:center;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.stat-number{display:block;font-size:2rem;font-weight:700}
.stat-label{color:#666}
.tabs{display:flex;gap:8px;padding:0 24px}
.tab-button{background:#fff;border:1px solid #ccc;border-radius:6px;padding:10px 18px;cursor:pointer;font-weight:600}
.tab-button.active{background:#1a2a4a;color:#fff}
#casesList{padding:16px 24px;display:grid;gap:12px}
.case-card{background:#fff;border-radius:8px;padding:16px;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.case-header{display:flex;gap:12px;align-items:center}
.case-title{flex:1}
.case-title h3{margin:0}
.case-title p{margin:2px 0;color:#666}
.case-time{color:#888;font-size:.85rem}
.pending-info{color:#c77700}
.resolved-info{color:#28a745}
.case-actions{display:flex;gap:8px;margin-top:10px}
.view-btn{background:#007bff;color:#fff;border:none;padding:10px 16px;border-radius:6px;font-weight:600;cursor:pointer}
.btn-resolve,.btn-resolve-alert{background:#28a745;color:#fff;border:none;padding:10px 16px;border-radius:6px;font-weight:600;cursor:pointer}
.no-cases{padding:32px;text-align:center;color:#888}
#caseModal{display:none;position:fixed;inset:0;background:rgba(0,0,0,.5)}
.modal-content{background:#fff;max-width:640px;margin:60px auto;padding:24px;border-radius:8px;max-height:80vh;overflow:auto}
.detail-grid{display:grid;grid-template-columns:1fr 1fr;gap:8px}
.detail-item label{font-weight:600;margin-right:6px}
.logout-btn{background:transparent;color:#fff;border:1px solid #fff;border-radius:6px;padding:8px 14px;cursor:pointer}
</style>
</head>
<body>
<header>
  <h1>&#128680; Emergency Dashboard</h1>
  <div>
    <span>{{.Station}}</span>
    <button class="logout-btn" id="refreshBtn" type="button">Refresh</button>
    <form method="post" action="/logout" style="display:inline"><button class="logout-btn" type="submit">Logout</button></form>
  </div>
</header>
{{- if .Degraded}}
<div class="degraded-banner" id="degradedBanner">Live feed unavailable. Displaying last known data.</div>
{{- end}}
<div class="stats-row" id="statsRow">
{{.StatsHTML}}
</div>
<div class="tabs">
  <button class="tab-button active" data-tab="all">All Cases (<span id="allCount">{{.Stats.AllCount}}</span>)</button>
  <button class="tab-button" data-tab="pending">Pending (<span id="pendingCount">{{.Stats.PendingCount}}</span>)</button>
  <button class="tab-button" data-tab="solved">Solved (<span id="solvedCount">{{.Stats.SolvedCount}}</span>)</button>
  <button class="tab-button" data-tab="deviceAlerts">Device Alerts (<span id="deviceAlertsCount">{{.Stats.DeviceAlertCount}}</span>)</button>
</div>
<div id="casesList">
{{.TabHTML}}
</div>
<div id="caseModal"><div class="modal-content"><span id="closeModal" style="float:right;cursor:pointer;font-size:1.4rem">&times;</span><div id="modalBody"></div></div></div>
<script>
let activeTab = "all";

function switchTab(tab) {
  activeTab = tab;
  document.querySelectorAll(".tab-button").forEach((b) => b.classList.toggle("active", b.dataset.tab === tab));
  refreshTab();
}

function refreshTab() {
  fetch("/dashboard/tab/" + activeTab)
    .then((r) => r.text())
    .then((html) => { document.getElementById("casesList").innerHTML = html; });
}

function refreshStats() {
  fetch("/dashboard/stats")
    .then((r) => r.text())
    .then((html) => { document.getElementById("statsRow").innerHTML = html; });
}

function openModal(url) {
  fetch(url)
    .then((r) => r.text())
    .then((html) => {
      document.getElementById("modalBody").innerHTML = html;
      document.getElementById("caseModal").style.display = "block";
    });
}

function closeModal() { document.getElementById("caseModal").style.display = "none"; }

function resolve(url, prompt) {
  if (!confirm(prompt)) return;
  fetch(url, { method: "POST" })
    .then((r) => r.json())
    .then((body) => {
      if (!body.success) { alert("Failed: " + body.message); return; }
      closeModal();
      refreshTab();
      refreshStats();
    });
}

document.addEventListener("click", (e) => {
  const btn = e.target.closest("button");
  if (!btn) {
    if (e.target.id === "closeModal" || e.target.id === "caseModal") closeModal();
    return;
  }
  if (btn.id === "refreshBtn") { refreshTab(); refreshStats(); }
  else if (btn.classList.contains("tab-button")) switchTab(btn.dataset.tab);
  else if (btn.classList.contains("view-btn") && btn.dataset.source === "device") openModal("/dashboard/alert/" + btn.dataset.id + "/modal");
  else if (btn.classList.contains("view-btn")) openModal("/dashboard/case/" + btn.dataset.id + "/modal");
  else if (btn.classList.contains("btn-resolve")) resolve("/api/cases/" + btn.dataset.id + "/resolve", "Are you sure you want to mark this case as resolved?");
  else if (btn.classList.contains("btn-resolve-alert")) resolve("/api/alerts/" + btn.dataset.id + "/resolve", "Mark this device alert as handled?");
});

const stream = new EventSource("/dashboard/stream");
stream.addEventListener("update", (e) => {
  const stats = JSON.parse(e.data);
  document.getElementById("allCount").textContent = stats.allCount;
  document.getElementById("pendingCount").textContent = stats.pendingCount;
  document.getElementById("solvedCount").textContent = stats.solvedCount;
  document.getElementById("deviceAlertsCount").textContent = stats.deviceAlertCount;
  refreshStats();
  refreshTab();
});
</script>
</body>
</html>`))

var loginTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Watchdesk - Station Login</title>
<style>
body{font-family:system-ui,sans-serif;background:#1a2a4a;display:flex;align-items:center;justify-content:center;min-height:100vh;margin:0}
.login-card{background:#fff;border-radius:10px;padding:32px;width:320px;box-shadow:0 4px 16px rgba(0,0,0,.3)}
.login-card h1{margin-top:0;font-size:1.2rem}
.login-card label{display:block;margin:12px 0 4px;font-weight:600}
.login-card input{width:100%;padding:10px;border:1px solid #ccc;border-radius:6px;box-sizing:border-box}
.login-card button{margin-top:18px;width:100%;background:#28a745;color:#fff;border:none;padding:12px;border-radius:6px;font-weight:700;cursor:pointer}
.login-error{color:#c0392b;margin-top:10px}
</style>
</head>
<body>
<form class="login-card" method="post" action="/login">
  <h1>&#128680; Station Login</h1>
  <label for="station">Station</label>
  <input id="station" name="station" required>
  <label for="headAcp">Head ACP</label>
  <input id="headAcp" name="headAcp" required>
  <label for="password">Password</label>
  <input id="password" name="password" type="password" required>
  <button type="submit">Sign In</button>
  {{- if .Error}}
  <p class="login-error">{{.Error}}</p>
  {{- end}}
</form>
</body>
</html>`))
