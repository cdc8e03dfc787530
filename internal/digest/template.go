package digest

// defaultTemplate is the embedded fallback used when no template override
// is configured or the file cannot be read. Placeholders are replaced
// literally, every occurrence.
const defaultTemplate = `<!doctype html><html><body style="margin:0;background:#0F172A;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="font-family:-apple-system,Segoe UI,Roboto,Arial,sans-serif;">
  <tr><td align="center" style="padding:24px;">
    <table role="presentation" width="640" cellpadding="0" cellspacing="0" style="max-width:640px;">
      <tr><td align="center" style="color:#E2E8F0;font-size:24px;font-weight:800;">☕ Café con IA — Top 10</td></tr>
      <tr><td align="center" style="color:#94A3B8;font-size:14px;padding:6px 0 18px;">{{fecha_larga}} · Lectura 5 min · IVD ≥ 90%</td></tr>
      <tr><td style="background:#FFFFFF;border-radius:16px;padding:24px;">
        <div style="font-size:18px;font-weight:700;color:#0B1220;">Qué pasó / Por qué importa / Qué hacer hoy</div>
        <div style="color:#475569;margin-top:8px;">{{resumen_120_palabras}}</div>
        <hr style="border:none;border-top:1px solid #E2E8F0;margin:16px 0">
        <div style="font-size:16px;font-weight:700;color:#0B1220;">Prompts del día</div>
        {{prompts_html}}
        <hr style="border:none;border-top:1px solid #E2E8F0;margin:16px 0">
        <div style="font-size:16px;font-weight:700;color:#0B1220;">Top 10</div>
        {{top10_html}}
      </td></tr>
    </table>
  </td></tr>
  </table></body></html>`
