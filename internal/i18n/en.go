package i18n

var en = map[string]string{
	"start": "Hello %s!\n" +
		"Every day at 08:00 I will ask you your weight.\n" +
		"You can log it anytime using /log <kg> or just /log.\n" +
		"Use /daily to see your weights with an evolution chart.",
	"help": "/log [kg] – log your weight now (or I will ask if you omit the number)\n" +
		"/monthly – average of the last 6 months\n" +
		"/weekly – average of the last 4 weeks\n" +
		"/daily – weights of the last 6 days + chart\n" +
		"/reminders on|off – toggle the morning reminder\n" +
		"/lang en|es – choose your language",
	"invalid_number":    "Invalid number. Example: /log 72.4",
	"weight_registered": "Weight registered: %s kg ✅",
	"ask_weight_now":    "How much do you weigh now? Reply with just the number.",
	"daily_reminder":    "Good morning ☀️ What's your weight today?",
	"monthly_header":    "📊 Average of the last %d months:",
	"weekly_header":     "📅 Average of the last %d weeks:",
	"daily_header":      "📆 Weights for the last %d days:",
	"entry":             "%s: %s kg",
	"no_data":           "%s: no data",
	"daily_chart_caption": "📈 Weight evolution chart - Last %d days",
	"daily_chart_title":   "Weight evolution - Last %d days",
	"weekly_summary":      "Weekly summary:\nCurrent %s kg vs. Previous %s kg → %s",
	"weekly_down":         "⬇️ -%s kg",
	"weekly_up":           "⬆️ +%s kg",
	"weekly_no_change":    "↔️ No change (±0.0 kg)",
	"monthly_chart_title": "Weight evolution – %s",
	"monthly_caption":     "%s: start %s kg / end %s kg\n%s",
	"monthly_down":        "👏 You lost %s kg this month",
	"monthly_up":          "⚠️ You gained %s kg this month",
	"reminders_on":        "🔔 Reminders enabled. I'll resume the morning reminder.",
	"reminders_off":       "🔕 Reminders disabled. I won't send the morning reminder.",
	"reminders_usage":     "Usage: /reminders on|off",
	"lang_set":            "Language set to English ✅",
	"lang_usage":          "Usage: /lang en|es",
	"unknown_command":     "Sorry, I didn't understand that command. Type /help to see available commands.",
}
