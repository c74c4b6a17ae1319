package i18n

var es = map[string]string{
	"start": "Hola %s!\n" +
		"Cada día a las 08:00 te preguntaré tu peso.\n" +
		"Puedes registrar cuando quieras usando /log <kg> o /log sin número.\n" +
		"Usa /daily para ver tus pesos con gráfico de evolución.",
	"help": "/log [kg] – registra tu peso ahora (o pregunta si omites número)\n" +
		"/monthly – media de los últimos 6 meses\n" +
		"/weekly – media de las últimas 4 semanas\n" +
		"/daily – pesos de los últimos 6 días + gráfico\n" +
		"/reminders on|off – activa o desactiva el recordatorio matutino\n" +
		"/lang en|es – elige tu idioma",
	"invalid_number":    "Número no válido. Ejemplo: /log 72.4",
	"weight_registered": "Peso registrado: %s kg ✅",
	"ask_weight_now":    "¿Cuánto pesas ahora? Responde solo con el número.",
	"daily_reminder":    "Buenos días ☀️ ¿Cuál es tu peso de hoy?",
	"monthly_header":    "📊 Media últimos %d meses:",
	"weekly_header":     "📅 Media últimas %d semanas:",
	"daily_header":      "📆 Pesos últimos %d días:",
	"entry":             "%s: %s kg",
	"no_data":           "%s: sin datos",
	"daily_chart_caption": "📈 Gráfico de evolución de peso - Últimos %d días",
	"daily_chart_title":   "Evolución peso - Últimos %d días",
	"weekly_summary":      "Resumen semanal:\nActual %s kg vs. Anterior %s kg → %s",
	"weekly_down":         "⬇️ -%s kg",
	"weekly_up":           "⬆️ +%s kg",
	"weekly_no_change":    "↔️ Sin cambios (±0.0 kg)",
	"monthly_chart_title": "Evolución peso – %s",
	"monthly_caption":     "%s: inicio %s kg / fin %s kg\n%s",
	"monthly_down":        "👏 Bajaste %s kg en el mes",
	"monthly_up":          "⚠️ Subiste %s kg en el mes",
	"reminders_on":        "🔔 Recordatorios activados. Retomaré el aviso matutino.",
	"reminders_off":       "🔕 Recordatorios desactivados. No enviaré el aviso matutino.",
	"reminders_usage":     "Uso: /reminders on|off",
	"lang_set":            "Idioma cambiado a español ✅",
	"lang_usage":          "Uso: /lang en|es",
	"unknown_command":     "No entiendo ese comando. Escribe /help para ver los comandos disponibles.",
}
