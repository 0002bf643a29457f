package triage

// chatPageHTML is the minimal chat shell served at GET /chat. The real
// front end replaces this; it exists so the triage API is exercisable
// from a browser.
const chatPageHTML = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<title>AI受診相談</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 2rem auto; }
#log { border: 1px solid #ccc; padding: 1rem; min-height: 200px; margin-bottom: 1rem; }
.msg { margin: 0.5rem 0; }
.msg.user { text-align: right; color: #2a5db0; }
.msg.error { color: #b02a2a; }
</style>
</head>
<body>
<h1>AI受診相談</h1>
<p>症状を入力すると、おすすめの診療科をご案内します。</p>
<div id="log"></div>
<form id="form">
<input id="message" type="text" size="50" placeholder="例: 足が痛い" autocomplete="off">
<button type="submit">送信</button>
</form>
<script>
const log = document.getElementById("log");
const form = document.getElementById("form");
const input = document.getElementById("message");

function append(text, cls) {
  const div = document.createElement("div");
  div.className = "msg " + cls;
  div.textContent = text;
  log.appendChild(div);
}

form.addEventListener("submit", async (e) => {
  e.preventDefault();
  const message = input.value;
  if (!message.trim()) return;
  append(message, "user");
  input.value = "";
  try {
    const res = await fetch("/api/chat", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ message }),
    });
    const body = await res.json();
    if (!res.ok) {
      append(body.error || "エラーが発生しました", "error");
      return;
    }
    append("おすすめの診療科: " + body.department, "assistant");
    if (body.reason) append("理由: " + body.reason, "assistant");
    if (body.note) append("補足: " + body.note, "assistant");
  } catch (err) {
    append("通信エラーが発生しました", "error");
  }
});
</script>
</body>
</html>
`
