package document

const stylesheet = `
:root {
  --ink: #1f2933;
  --muted: #616e7c;
  --rule: #d9e2ec;
  --success: #1f7a4d;
  --success-bg: #e3f7ec;
  --warning: #8a5a00;
  --warning-bg: #fff4d6;
  --danger: #a61b1b;
  --danger-bg: #fde8e8;
  --info: #1d4f91;
  --info-bg: #e6effb;
  --neutral: #52606d;
  --neutral-bg: #f0f4f8;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: "Helvetica Neue", Arial, sans-serif; font-size: 11pt; color: var(--ink); background: #fff; }
.report { max-width: 1040px; margin: 0 auto; padding: 32px; }
h1 { font-size: 24pt; margin: 0 0 8px; }
h2 { font-size: 16pt; margin: 32px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--rule); }
h2 .ordinal { display: inline-block; min-width: 2em; color: var(--muted); }
h3 { font-size: 12pt; margin: 20px 0 8px; }
.cover { padding: 48px 0 24px; border-bottom: 4px solid var(--ink); }
.cover .subtitle { color: var(--muted); font-size: 13pt; }
.contents ol { list-style: none; padding: 0; columns: 2; }
.contents li { padding: 2px 0; }
.contents a { color: var(--ink); text-decoration: none; }
.details { display: grid; grid-template-columns: max-content 1fr; gap: 4px 16px; }
.details dt { color: var(--muted); }
.details dd { margin: 0; }
.stat-grid { display: grid; gap: 12px; margin: 12px 0 16px; }
.stat-grid-3 { grid-template-columns: repeat(3, 1fr); }
.stat-grid-4 { grid-template-columns: repeat(4, 1fr); }
.stat-card { border: 1px solid var(--rule); border-left-width: 4px; border-radius: 4px; padding: 10px 12px; }
.stat-value { font-size: 18pt; font-weight: 600; }
.stat-label { color: var(--muted); font-size: 9pt; text-transform: uppercase; letter-spacing: .04em; }
.stat-hint { color: var(--muted); font-size: 9pt; margin-top: 4px; }
.stat-card.tone-success { border-left-color: var(--success); }
.stat-card.tone-warning { border-left-color: var(--warning); }
.stat-card.tone-danger { border-left-color: var(--danger); }
.stat-card.tone-info { border-left-color: var(--info); }
.stat-card.tone-neutral { border-left-color: var(--neutral); }
.data-table { width: 100%; border-collapse: collapse; margin: 8px 0 12px; font-size: 9.5pt; }
.data-table th { text-align: left; background: var(--neutral-bg); padding: 6px 8px; border-bottom: 1px solid var(--rule); }
.data-table td { padding: 5px 8px; border-bottom: 1px solid var(--rule); vertical-align: top; }
.table-footnote, .note { color: var(--muted); font-size: 9pt; }
.badge { display: inline-block; padding: 1px 8px; border-radius: 10px; font-size: 8.5pt; font-weight: 600; }
.badge.tone-success { color: var(--success); background: var(--success-bg); }
.badge.tone-warning { color: var(--warning); background: var(--warning-bg); }
.badge.tone-danger { color: var(--danger); background: var(--danger-bg); }
.badge.tone-info { color: var(--info); background: var(--info-bg); }
.badge.tone-neutral { color: var(--neutral); background: var(--neutral-bg); }
.tone-text-success { color: var(--success); font-weight: 600; }
.tone-text-warning { color: var(--warning); font-weight: 600; }
.tone-text-danger { color: var(--danger); font-weight: 600; }
.callout { border-radius: 4px; padding: 10px 14px; margin: 12px 0; border: 1px solid; }
.callout ul { margin: 6px 0 0; padding-left: 20px; }
.callout-title { font-weight: 600; }
.callout-success { color: var(--success); background: var(--success-bg); border-color: var(--success); }
.callout-warning { color: var(--warning); background: var(--warning-bg); border-color: var(--warning); }
.callout-danger { color: var(--danger); background: var(--danger-bg); border-color: var(--danger); }
.callout-info { color: var(--info); background: var(--info-bg); border-color: var(--info); }
.empty-state { color: var(--muted); font-style: italic; padding: 12px; background: var(--neutral-bg); border-radius: 4px; }
.section-error { color: var(--danger); background: var(--danger-bg); border: 1px dashed var(--danger); padding: 12px; border-radius: 4px; }
.gallery { display: grid; grid-template-columns: repeat(3, 1fr); gap: 12px; }
.gallery figure { margin: 0; border: 1px solid var(--rule); border-radius: 4px; overflow: hidden; }
.gallery img { width: 100%; height: 180px; object-fit: cover; display: block; }
.gallery figcaption { padding: 6px 8px; font-size: 9pt; color: var(--muted); }
.report-footer { margin-top: 48px; padding-top: 12px; border-top: 1px solid var(--rule); color: var(--muted); font-size: 9pt; }
.page-break { break-before: page; page-break-before: always; height: 0; }
@media print {
  .report { padding: 0; max-width: none; }
  .report-section { break-inside: auto; }
  .stat-card, .callout, tr { break-inside: avoid; }
}
`
