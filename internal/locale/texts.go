package locale

// English is the reference table; every key used by the bot appears here.
// The Bengali and Tamil tables cover the high-traffic strings and fall back
// to English for the rest.
var translations = map[string]map[string]string{
	"en": {
		// Common
		"welcome":                "👋 Welcome to REACH! I help you manage money, set goals and track spending.\n\nPlease choose your language:",
		"main_menu":              "What would you like to do?",
		"menu_set_goal":          "🎯 Set a goal",
		"menu_log_expense":       "💸 Log expense",
		"menu_ask_advice":        "💬 Ask advice",
		"menu_view_expenses":     "📊 My expenses",
		"menu_profile":           "👤 My profile",
		"menu_change_language":   "🌐 Language",
		"select_language_prompt": "Please choose your language:",
		"language_selected":      "✅ Language saved!",
		"back_to_menu":           "🔙 Back to menu",
		"confirm_yes":            "✅ Yes",
		"confirm_no":             "❌ No",
		"error_generic":          "😕 Something went wrong. Please try again.",
		"help_hint":              "I didn't understand that. Use the menu below to get started.",

		// Onboarding
		"income_question":      "💰 Roughly how much do you earn each month?",
		"income_option_1":      "Less than $500",
		"income_option_2":      "$500 – $1000",
		"income_option_3":      "$1000 – $1500",
		"income_option_4":      "$1500 – $2000",
		"income_option_5":      "More than $2000",
		"goal_question":        "🎯 What is your main financial goal right now?",
		"goal_option_1":        "Build savings",
		"goal_option_2":        "Send money home",
		"goal_option_3":        "Pay off debt",
		"goal_option_4":        "Plan for education",
		"debt_question":        "💳 Do you currently have any debt?",
		"debt_option_1":        "No debt",
		"debt_option_2":        "Some debt, manageable",
		"debt_option_3":        "Significant debt",
		"family_question":      "👪 Who depends on your income?",
		"family_option_1":      "Just myself",
		"family_option_2":      "Family here with me",
		"family_option_3":      "Family back home",
		"profile_summary":      "Here is your profile:\n\n💰 Income: %s\n🎯 Goal: %s\n💳 Debt: %s\n👪 Family: %s\n\nIs this correct?",
		"profile_display":      "👤 Your profile:\n\n💰 Income: %s\n🎯 Goal: %s\n💳 Debt: %s\n👪 Family: %s",
		"profile_saved":        "✅ Your profile is saved. I'll use it to personalise advice.",
		"profile_restart":      "No problem, let's start again.",
		"profile_not_found":    "You don't have a profile yet. Let's set one up — it takes a minute.",
		"update_profile":       "✏️ Update profile",
		"onboarding_cancelled": "Profile setup cancelled.",

		// Goal-setting assessments
		"income_question_behavioral":  "💰 To suggest goals that fit your life, roughly how much do you earn each month?",
		"family_question_low_income":  "👪 Every dollar counts when income is tight. Who are you supporting?",
		"family_question_high_income": "👪 Who are you supporting financially?",
		"family_needs_option_1":       "Single, no dependents",
		"family_needs_option_2":       "Supporting family here",
		"family_needs_option_3":       "Sending money to family back home",
		"family_needs_option_4":       "Supporting children's education",
		"spending_question":           "🛒 Which best describes how your money goes each month?",
		"spending_option_1":           "I save regularly",
		"spending_option_2":           "Most goes to my family",
		"spending_option_3":           "I spend as needed",
		"spending_option_4":           "Money runs out before payday",
		"spending_context_remittance": "Since you send money home, we can plan around your remittance schedule.",
		"spending_context_education":  "Since you support education, we can plan around school fees and terms.",
		"generating_goals":            "✨ Creating goal ideas for your situation...",

		// Goal type selection
		"goal_suggestions_prompt": "Here are goals that fit your situation. Pick one, or choose your own:",
		"goal_behavioral_context": "Small, concrete goals are easier to reach — each one connects to what matters to you.",
		"custom_goal_option":      "✏️ My own goal",
		"custom_goal_prompt":      "Choose a goal type:",
		"family_goal_question":    "What would you like to save for?",
		"family_goal_savings":     "💰 Savings",
		"family_goal_remittance":  "🏠 Send money home",
		"family_goal_education":   "📚 Education",
		"family_goal_health":      "❤️ Health",
		"goal_type_savings":       "Savings",
		"goal_type_remittance":    "Remittance",
		"goal_type_education":     "Education",
		"goal_type_health":        "Health",
		"goal_type_other":         "Personal goal",
		"goal_rationale_prefix":   "💡 Why this goal:",

		// Goal amount
		"goal_amount_question_savings":    "💰 How much would you like to save? Type an amount, e.g. 500",
		"goal_amount_question_remittance": "🏠 How much would you like to send home? Type an amount, e.g. 500",
		"goal_amount_question_education":  "📚 How much do you need for education? Type an amount, e.g. 500",
		"goal_amount_question_health":     "❤️ How much do you need for health expenses? Type an amount, e.g. 500",
		"goal_amount_question_other":      "🎯 How much is your goal? Type an amount, e.g. 500",
		"invalid_amount":                  "Please enter a positive amount, e.g. 500 or 1,250.50",

		// Deadline
		"goal_deadline_question": "🗓️ When do you want to reach this goal?",
		"deadline_next_payday":   "By next payday (2 weeks)",
		"deadline_1month":        "In 1 month",
		"deadline_3months":       "In 3 months",
		"deadline_6months":       "In 6 months",
		"deadline_1year":         "In 1 year",
		"weekly_breakdown":       "💵 To reach %s you'd save about %s per week.",

		// Steps & confirmation
		"goal_steps_question": "Here is a step-by-step plan:\n\n%s\n\nDoes this work for you?",
		"enter_custom_steps":  "✏️ Type your own steps, one per line:",
		"invalid_steps":       "Please type at least one step.",
		"goal_summary":        "🎯 Your goal:\n\nType: %s\nAmount: %.2f\nDeadline: %s\n\nSteps:\n%s\n\nSave this goal?",
		"goal_saved":          "🏆 Goal saved! I'll help you stay on track.",
		"goal_restart":        "Okay, let's plan your goal again from the start.",
		"goal_cancelled":      "Goal setting cancelled.",

		// Goal view
		"no_goals":                   "You don't have a goal yet. Set one from the menu!",
		"goal_display":               "🎯 Your goal: %s\nAmount: %.2f\nDeadline: %s\nProgress: %.0f (%.0f%%)\n\n%s",
		"days_left":                  "📅 %d days left to reach your goal",
		"deadline_reached":           "⏰ Deadline reached!",
		"current_focus":              "🎯 Current focus: %s",
		"progress_steps_header":      "Progress steps:",
		"motivation_start":           "💪 You've started! Each small step matters.",
		"motivation_quarter":         "👏 Keep going! You're making good progress.",
		"motivation_half":            "🌟 You're over halfway there!",
		"motivation_final":           "🔥 So close to your goal! Final push!",
		"motivation_done":            "🏆 Congratulations! You reached your goal!",
		"update_progress":            "📈 Update progress",
		"progress_update_soon":       "Progress updates are coming soon.",
		"share_with_family":          "💌 Share with family",
		"share_with_family_text":     "Here's a message you can forward to your family:",
		"share_goal_message":         "🎯 I'm working toward a goal: %s. I plan to reach %.2f by %s. Your support means a lot! 💪",
		"share_message_instructions": "Long-press the message above to forward it.",

		// Expenses
		"enter_expense":        "💸 Tell me what you spent, e.g. \"12 dollars lunch at hawker centre\"",
		"expense_parse_error":  "😕 I couldn't understand that expense. Try something like \"10 USD groceries\".",
		"expense_saved":        "✅ Saved: %.2f %s — %s (%s)",
		"log_expense":          "💸 Log expense",
		"log_another_expense":  "➕ Log another",
		"view_expenses":        "📊 View expenses",
		"no_expenses":          "No expenses logged yet. Log your first one from the menu!",
		"expenses_summary":     "📊 You logged %d expenses, %.2f %s in total.",
		"expenses_by_category": "By category:",
		"recent_expenses":      "Recent:",

		// Advice
		"advice_category_prompt":     "What do you need advice about?",
		"advice_category_savings":    "💰 Saving money",
		"advice_category_debt":       "💳 Managing debt",
		"advice_category_remittance": "🏠 Sending money home",
		"advice_category_budget":     "📊 Budgeting",
		"advice_category_custom":     "✏️ My own question",
		"advice_question_savings":    "How can I save more from my salary?",
		"advice_question_debt":       "How should I manage and reduce my debt?",
		"advice_question_remittance": "How can I send money home safely and cheaply?",
		"advice_question_budget":     "How do I make a simple monthly budget?",
		"advice_question_general":    "How can I improve my finances?",
		"enter_advice_question":      "✏️ Type your question:",
		"ai_thinking":                "🤔 Thinking...",
		"ask_another":                "💬 Ask another question",
		"advice_fallback":            "😔 Sorry, I can't give advice right now. Please try again later.",
	},

	"bn": {
		"welcome":                "👋 REACH-এ স্বাগতম! আমি টাকা ব্যবস্থাপনা, লক্ষ্য নির্ধারণ ও খরচের হিসাব রাখতে সাহায্য করি।\n\nআপনার ভাষা বেছে নিন:",
		"main_menu":              "আপনি কী করতে চান?",
		"menu_set_goal":          "🎯 লক্ষ্য ঠিক করুন",
		"menu_log_expense":       "💸 খরচ লিখুন",
		"menu_ask_advice":        "💬 পরামর্শ নিন",
		"menu_view_expenses":     "📊 আমার খরচ",
		"menu_profile":           "👤 আমার প্রোফাইল",
		"menu_change_language":   "🌐 ভাষা",
		"select_language_prompt": "আপনার ভাষা বেছে নিন:",
		"language_selected":      "✅ ভাষা সংরক্ষিত হয়েছে!",
		"back_to_menu":           "🔙 মেনুতে ফিরুন",
		"confirm_yes":            "✅ হ্যাঁ",
		"confirm_no":             "❌ না",
		"error_generic":          "😕 কিছু ভুল হয়েছে। আবার চেষ্টা করুন।",
		"ai_thinking":            "🤔 ভাবছি...",
		"invalid_amount":         "দয়া করে একটি ধনাত্মক সংখ্যা লিখুন, যেমন 500",
		"goal_saved":             "🏆 লক্ষ্য সংরক্ষিত! আমি আপনাকে পথে রাখতে সাহায্য করব।",
		"expense_parse_error":    "😕 খরচটি বুঝতে পারিনি। \"10 USD groceries\" এর মতো লিখুন।",
	},

	"ta": {
		"welcome":                "👋 REACH-க்கு வரவேற்கிறோம்! பணம், இலக்குகள், செலவுகளை நிர்வகிக்க உதவுகிறேன்.\n\nஉங்கள் மொழியைத் தேர்ந்தெடுக்கவும்:",
		"main_menu":              "என்ன செய்ய விரும்புகிறீர்கள்?",
		"menu_set_goal":          "🎯 இலக்கு அமைக்க",
		"menu_log_expense":       "💸 செலவு பதிவு",
		"menu_ask_advice":        "💬 ஆலோசனை கேட்க",
		"menu_view_expenses":     "📊 என் செலவுகள்",
		"menu_profile":           "👤 என் சுயவிவரம்",
		"menu_change_language":   "🌐 மொழி",
		"select_language_prompt": "உங்கள் மொழியைத் தேர்ந்தெடுக்கவும்:",
		"language_selected":      "✅ மொழி சேமிக்கப்பட்டது!",
		"back_to_menu":           "🔙 மெனுவிற்கு திரும்ப",
		"confirm_yes":            "✅ ஆம்",
		"confirm_no":             "❌ இல்லை",
		"error_generic":          "😕 ஏதோ தவறு நடந்தது. மீண்டும் முயற்சிக்கவும்.",
		"ai_thinking":            "🤔 யோசிக்கிறேன்...",
		"invalid_amount":         "நேர்மறை தொகையை உள்ளிடவும், எ.கா. 500",
		"goal_saved":             "🏆 இலக்கு சேமிக்கப்பட்டது! நான் உதவுகிறேன்.",
		"expense_parse_error":    "😕 அந்தச் செலவு புரியவில்லை. \"10 USD groceries\" போல முயற்சிக்கவும்.",
	},
}
