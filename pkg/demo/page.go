// Package demo bundles the self-contained demo page the run command falls
// back to when no input file is given. The page is a mobile storefront
// layout with a collapsible left sidebar, a slide-in right sidebar and a
// horizontally scrolling table, so every supported action kind has
// something to act on.
package demo

import (
	"net/url"
	"strings"
)

// HTML returns the demo document.
func HTML() string {
	return strings.TrimSpace(page)
}

// DataURI percent-encodes an HTML document into a data: URI the browser can
// navigate to directly, without touching the filesystem.
func DataURI(html string) string {
	return "data:text/html;charset=utf-8," + url.PathEscape(html)
}

const page = `
<!DOCTYPE html>
<html lang="ja">
<head>
  <meta charset="UTF-8" />
  <title>サンプル商品ページ</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    * { box-sizing: border-box; }

    body {
      margin: 0;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
      display: flex;
      flex-direction: column;
      height: 100vh;
      color: #222;
      background: #f5f5f7;
    }

    header {
      display: flex;
      align-items: center;
      justify-content: space-between;
      background: #111827;
      color: #f9fafb;
      padding: 0.5rem 1rem;
      position: relative;
      z-index: 100;
    }

    .logo { font-weight: bold; font-size: 1.1rem; }

    .header-right { display: flex; gap: 0.75rem; align-items: center; }

    .header-button {
      background: #2563eb;
      border: none;
      color: white;
      padding: 0.35rem 0.8rem;
      border-radius: 9999px;
      font-size: 0.85rem;
      cursor: pointer;
    }

    .header-button.secondary {
      background: transparent;
      border: 1px solid #4b5563;
      color: #e5e7eb;
    }

    .hamburger {
      display: none;
      cursor: pointer;
      font-size: 1.5rem;
      line-height: 1;
      padding: 0.25rem 0.5rem;
      border-radius: 0.375rem;
    }

    .layout {
      flex: 1 1 auto;
      display: flex;
      overflow: hidden;
    }

    aside.sidebar {
      width: 260px;
      background: #111827;
      color: #e5e7eb;
      padding: 1rem;
      overflow-y: auto;
    }

    .sidebar h2 {
      font-size: 0.9rem;
      letter-spacing: 0.08em;
      text-transform: uppercase;
      color: #9ca3af;
      margin-top: 0;
    }

    .sidebar-nav { list-style: none; padding: 0; margin: 0; }
    .sidebar-nav li { margin-bottom: 0.35rem; }

    .sidebar-nav a {
      display: block;
      padding: 0.45rem 0.5rem;
      border-radius: 0.375rem;
      text-decoration: none;
      color: #e5e7eb;
      font-size: 0.9rem;
    }

    .sidebar-nav a:hover,
    .sidebar-nav a.active { background: #1f2937; }

    main.main-content {
      flex: 1 1 auto;
      padding: 1rem 1.5rem;
      overflow-y: auto;
      background: radial-gradient(circle at top left, #eff6ff 0, #f5f5f7 40%);
    }

    .page-title { margin: 0; font-size: 1.4rem; font-weight: 600; }

    .toolbar {
      display: flex;
      flex-wrap: wrap;
      gap: 0.5rem;
      align-items: center;
      margin: 1rem 0;
    }

    .button {
      border-radius: 9999px;
      border: 1px solid #d1d5db;
      background: white;
      padding: 0.35rem 0.8rem;
      font-size: 0.8rem;
      cursor: pointer;
    }

    .button.primary { background: #2563eb; color: white; border-color: #2563eb; }

    .search-input {
      border-radius: 9999px;
      border: 1px solid #d1d5db;
      padding: 0.35rem 0.8rem;
      font-size: 0.8rem;
    }

    .card {
      background: rgba(255, 255, 255, 0.9);
      border-radius: 0.75rem;
      padding: 1rem;
      margin-bottom: 1rem;
      box-shadow: 0 12px 22px rgba(15, 23, 42, 0.12);
    }

    .card-title { margin: 0; font-size: 1rem; font-weight: 600; }

    .product-grid {
      display: grid;
      grid-template-columns: repeat(auto-fill, minmax(180px, 1fr));
      gap: 0.75rem;
      margin-top: 0.75rem;
    }

    .product-card {
      background: white;
      border-radius: 0.75rem;
      padding: 0.75rem;
      border: 1px solid #e5e7eb;
      display: flex;
      flex-direction: column;
      gap: 0.4rem;
    }

    .product-name { font-size: 0.9rem; font-weight: 500; }
    .product-meta { font-size: 0.75rem; color: #6b7280; }
    .product-small-price { font-weight: 600; }

    .table-wrapper {
      width: 100%;
      overflow-x: auto;
      margin-top: 0.5rem;
    }

    table {
      border-collapse: collapse;
      min-width: 900px; /* wide on purpose so the wrapper scrolls */
      font-size: 0.8rem;
    }

    th, td {
      border: 1px solid #e5e7eb;
      padding: 0.4rem 0.5rem;
      white-space: nowrap;
      text-align: left;
    }

    th { background: #f9fafb; position: sticky; top: 0; }

    footer {
      background: #111827;
      color: #6b7280;
      font-size: 0.75rem;
      padding: 0.5rem 1rem;
      text-align: center;
    }

    .right-sidebar {
      position: fixed;
      top: 0;
      right: 0;
      bottom: 0;
      width: 320px;
      background: #f3f4f6;
      border-left: 1px solid #e5e7eb;
      box-shadow: -6px 0 16px rgba(15, 23, 42, 0.25);
      padding: 1rem 1.25rem;
      overflow-y: auto;
      transform: translateX(100%); /* off-screen until opened */
      transition: transform 0.25s ease-out;
      z-index: 60;
    }

    .right-sidebar.open { transform: translateX(0); }

    .right-sidebar-title { font-size: 0.95rem; font-weight: 600; margin: 0 0 0.75rem; }

    .right-sidebar-section {
      margin-bottom: 1rem;
      padding-bottom: 0.75rem;
      border-bottom: 1px solid #e5e7eb;
      font-size: 0.85rem;
    }

    .right-sidebar-button {
      width: 100%;
      margin-top: 0.6rem;
      padding: 0.5rem 0;
      font-size: 0.85rem;
      border-radius: 9999px;
      border: none;
      background: #2563eb;
      color: #ffffff;
      cursor: pointer;
    }

    .right-sidebar-handle {
      position: fixed;
      top: 50%;
      right: 0;
      transform: translate(50%, -50%);
      width: 32px;
      height: 48px;
      border-radius: 9999px 0 0 9999px;
      border: 1px solid #d1d5db;
      background: #ffffff;
      box-shadow: 0 4px 10px rgba(15, 23, 42, 0.3);
      display: flex;
      align-items: center;
      justify-content: center;
      cursor: pointer;
      z-index: 61;
      font-size: 1.1rem;
    }

    @media (max-width: 900px) {
      .layout { position: relative; }

      aside.sidebar {
        position: fixed;
        left: -280px;
        top: 0;
        bottom: 0;
        z-index: 50;
        transition: left 0.25s ease-out;
      }

      aside.sidebar.open { left: 0; }

      .hamburger { display: inline-block; }

      .header-right { display: none; }
    }
  </style>
</head>
<body>
  <header>
    <div class="left">
      <span class="hamburger" onclick="toggleSidebar()">☰</span>
      <span class="logo">ShopSample</span>
    </div>
    <div class="header-right">
      <button class="header-button secondary">サインイン</button>
      <button class="header-button">カートを見る</button>
    </div>
  </header>

  <div class="layout">
    <aside class="sidebar" id="sidebar">
      <h2>カテゴリ</h2>
      <ul class="sidebar-nav">
        <li><a href="#" class="active">すべての商品</a></li>
        <li><a href="#">ノートPC</a></li>
        <li><a href="#">タブレット</a></li>
        <li><a href="#">スマートフォン</a></li>
        <li><a href="#">アクセサリー</a></li>
      </ul>
    </aside>

    <main class="main-content">
      <h1 class="page-title">ビジネス向けノートPC</h1>

      <div class="toolbar">
        <button class="button primary">新規商品を追加</button>
        <button class="button">並び替え：人気順</button>
        <input class="search-input" type="text" name="q" placeholder="商品名・型番で検索" />
        <button class="button">検索</button>
      </div>

      <section class="card">
        <h2 class="card-title">商品一覧</h2>
        <div class="product-grid">
          <div class="product-card">
            <div class="product-name">BizBook 14 Pro</div>
            <div class="product-meta">Core i7 / 16GB / 512GB SSD / 1.1kg</div>
            <span class="product-small-price">¥129,800</span>
          </div>
          <div class="product-card">
            <div class="product-name">BizBook 13 Air</div>
            <div class="product-meta">Core i5 / 8GB / 256GB SSD / 0.99kg</div>
            <span class="product-small-price">¥99,800</span>
          </div>
          <div class="product-card">
            <div class="product-name">BizBook 15 Plus</div>
            <div class="product-meta">Ryzen 7 / 16GB / 1TB SSD / 1.3kg</div>
            <span class="product-small-price">¥139,800</span>
          </div>
          <div class="product-card">
            <div class="product-name">BizBook 16 Creator</div>
            <div class="product-meta">Core i9 / 32GB / 1TB SSD / RTX搭載</div>
            <span class="product-small-price">¥199,800</span>
          </div>
        </div>
      </section>

      <section class="card">
        <h2 class="card-title">商品スペック比較</h2>
        <div class="table-wrapper">
          <table>
            <thead>
              <tr>
                <th>商品名</th><th>CPU</th><th>メモリ</th><th>ストレージ</th>
                <th>画面サイズ</th><th>解像度</th><th>重量</th><th>バッテリー</th>
                <th>OS</th><th>Wi-Fi</th><th>保証</th>
              </tr>
            </thead>
            <tbody>
              <tr>
                <td>BizBook 14 Pro</td><td>Core i7-1360P</td><td>16GB</td><td>512GB SSD</td>
                <td>14"</td><td>1920x1080</td><td>1.1kg</td><td>最大18時間</td>
                <td>Windows 11 Pro</td><td>Wi-Fi 6E</td><td>3年</td>
              </tr>
              <tr>
                <td>BizBook 13 Air</td><td>Core i5-1335U</td><td>8GB</td><td>256GB SSD</td>
                <td>13.3"</td><td>1920x1200</td><td>0.99kg</td><td>最大16時間</td>
                <td>Windows 11 Home</td><td>Wi-Fi 6</td><td>1年</td>
              </tr>
              <tr>
                <td>BizBook 15 Plus</td><td>Ryzen 7 7840U</td><td>16GB</td><td>1TB SSD</td>
                <td>15.6"</td><td>2560x1440</td><td>1.3kg</td><td>最大14時間</td>
                <td>Windows 11 Pro</td><td>Wi-Fi 6E</td><td>2年</td>
              </tr>
            </tbody>
          </table>
        </div>
      </section>
    </main>
  </div>

  <aside class="right-sidebar" id="right-sidebar">
    <h2 class="right-sidebar-title">フィルター</h2>

    <div class="right-sidebar-section">
      <label><input type="checkbox" checked /> 在庫あり</label><br />
      <label><input type="checkbox" /> 予約受付中</label>
    </div>

    <div class="right-sidebar-section">
      <input type="text" placeholder="店舗名やキャンペーン名で絞り込み" />
    </div>

    <button class="right-sidebar-button">この条件で集計</button>
  </aside>

  <button
    class="right-sidebar-handle"
    id="right-sidebar-handle"
    type="button"
    aria-label="右サイドバーを開閉"
    onclick="toggleRightSidebar()"
  >
    «
  </button>

  <footer>
    &copy; 2025 ShopSample Inc. すべての商標は各社に帰属します。
  </footer>

  <script>
    function toggleSidebar() {
      var sidebar = document.getElementById('sidebar');
      sidebar.classList.toggle('open');
    }

    function toggleRightSidebar() {
      var rightSidebar = document.getElementById('right-sidebar');
      var handle = document.getElementById('right-sidebar-handle');
      var isOpen = rightSidebar.classList.toggle('open');

      if (handle) {
        handle.textContent = isOpen ? '»' : '«';
        handle.style.right = isOpen ? '320px' : '0';
      }
    }
  </script>
</body>
</html>
`
