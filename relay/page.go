package relay

// framePage is served to browsers that attach as content frames. It loads
// the relayed URL into an iframe and reports navigation back to the host.
const framePage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>webpreview</title>
<style>
  html, body { margin: 0; height: 100%; background: #1e1e1e; }
  iframe { border: 0; width: 100%; height: 100%; background: #fff; }
</style>
</head>
<body>
<iframe id="frame" sandbox="allow-scripts allow-forms allow-same-origin allow-popups"></iframe>
<script>
  const frame = document.getElementById("frame");
  const ws = new WebSocket("ws://" + location.host + "/ws");
  const history = [];
  let index = -1;

  function load(url, record) {
    if (record) {
      history.splice(index + 1);
      history.push(url);
      index = history.length - 1;
    }
    frame.src = url;
    ws.send(JSON.stringify({ previewUrl: url }));
  }

  ws.onmessage = (event) => {
    const preview = JSON.parse(event.data).preview;
    if (!preview) return;
    if (preview.url !== undefined) load(preview.url, true);
    if (preview.back && index > 0) load(history[--index], false);
    if (preview.forward && index < history.length - 1) load(history[++index], false);
    if (preview.refresh && index >= 0) load(history[index], false);
  };

  ws.onclose = () => {
    document.title = "webpreview (detached)";
  };

  frame.onerror = () => {
    ws.send(JSON.stringify({ command: "alert", text: "failed to load " + frame.src }));
  };
</script>
</body>
</html>
`
