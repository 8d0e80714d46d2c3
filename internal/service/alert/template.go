package alert

// HTML template for availability alert e-mails.

const alertTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            background: linear-gradient(135deg, #16a34a, #15803d);
            color: white;
            padding: 30px;
            text-align: center;
            border-radius: 10px 10px 0 0;
        }
        .header h1 {
            margin: 0;
            font-size: 24px;
        }
        .content {
            background: #ffffff;
            padding: 30px;
            border: 1px solid #e5e7eb;
            border-top: none;
        }
        .info-box {
            background: #f3f4f6;
            padding: 15px;
            border-radius: 6px;
            margin: 15px 0;
        }
        .footer {
            background: #f9fafb;
            padding: 20px;
            text-align: center;
            font-size: 12px;
            color: #6b7280;
            border: 1px solid #e5e7eb;
            border-top: none;
            border-radius: 0 0 10px 10px;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>⚡ Ładowarka dostępna</h1>
    </div>
    <div class="content">
        <p>Stacja <strong>{{.StationName}}</strong> ma wolne złącze.</p>
        <div class="info-box">
            <p><strong>Adres:</strong> {{.Address}}</p>
            <p><strong>Wolne ładowarki:</strong> {{.AvailableChargers}} / {{.TotalChargers}}</p>
            <p><strong>Maksymalna moc:</strong> {{.MaxPower}} kW</p>
        </div>
        <p>Powiadomienie jest jednorazowe — po przyjeździe sprawdź dostępność w aplikacji.</p>
    </div>
    <div class="footer">
        <p>Karta Łodzianina — powiadomienia o ładowarkach</p>
    </div>
</body>
</html>
`
