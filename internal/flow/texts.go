package flow

// User-facing prompts and confirmations, one per conversational turn.
const (
	promptTitle      = "Введите название мероприятия:"
	promptTitleEmpty = "❌ Название не может быть пустым. Введите название мероприятия:"
	promptDate       = "📅 Введите дату мероприятия в формате ДД-ММ-ГГГГ:"
	promptDateBad    = "❌ Дата введена неверно. Попробуйте еще раз (ДД-ММ-ГГГГ):"
	promptCategory   = "Выберите тип мероприятия:"
	categoryRejected = "❌ Неверный выбор. Попробуйте снова."
	promptTags       = "🔖 Введите хэштеги через запятую (например, #деньрождения, #семья):"
	eventCreated     = "✅ Мероприятие добавлено!"

	promptContent      = "📝 Введите текст заметки:"
	promptContentEmpty = "❌ Заметка не может быть пустой. Введите текст заметки:"
	noteCreated        = "✅ Заметка создана!"
)
