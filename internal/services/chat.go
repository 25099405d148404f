package services

import (
	"strings"

	"github.com/lunahq/luna/internal/models"
)

type ChatMessageStore interface {
	Append(message models.ChatMessage) (models.ChatMessage, error)
	ListRecent(limit int) ([]models.ChatMessage, error)
	TrimToNewest(limit int) error
}

// ChatService answers health questions from a fixed keyword-routed table
// and keeps a capped message history. No model call is involved.
type ChatService struct {
	messages ChatMessageStore
}

func NewChatService(messages ChatMessageStore) *ChatService {
	return &ChatService{messages: messages}
}

type ChatReply struct {
	Content      string   `json:"content"`
	Category     string   `json:"category"`
	QuickActions []string `json:"quick_actions"`
}

type chatCategory struct {
	name         string
	keywords     []string
	response     string
	quickActions []string
}

// Categories are matched in order; the first keyword hit wins.
var chatCategories = []chatCategory{
	{
		name:     "uti-health",
		keywords: []string{"uti", "urinary", "burning", "infection", "bladder"},
		response: "Burning or urgency when urinating often points to a urinary tract infection. " +
			"Drink plenty of water, urinate frequently, and avoid scented products near the urethra. " +
			"See a healthcare provider if symptoms last beyond a day or two, or if fever, chills, back pain, or blood in urine appear; bacterial UTIs usually need antibiotics.",
		quickActions: []string{"UTI prevention tips", "When to see a doctor", "Home remedies", "Symptoms to watch"},
	},
	{
		name:     "vaginal-health",
		keywords: []string{"discharge", "vaginal", "itching", "odor", "yeast"},
		response: "Normal discharge is clear or milky white with little odor, and its consistency changes across the cycle. " +
			"Watch for sudden changes in color, smell, or texture, or discharge accompanied by itching or burning. " +
			"Gentle unscented cleansing, cotton underwear, and skipping douches keep the natural balance intact; persistent changes are worth a clinical check.",
		quickActions: []string{"Normal vs abnormal discharge", "pH balance tips", "Hygiene recommendations", "When to seek care"},
	},
	{
		name:     "menstrual-health",
		keywords: []string{"period", "menstrual", "cycle", "bleeding"},
		response: "Typical cycles run 21-35 days with 2-7 days of bleeding, and some variation is normal. " +
			"Heat, gentle movement, and anti-inflammatory pain relief help with cramps. " +
			"Cycles consistently shorter than 21 days or longer than 35, or bleeding that soaks through protection hourly, deserve a conversation with your provider.",
		quickActions: []string{"Cycle tracking", "Pain management", "Flow patterns", "Irregular periods"},
	},
	{
		name:     "fertility",
		keywords: []string{"fertil", "ovulat", "conceiv", "pregnancy"},
		response: "Conception is most likely in the roughly six fertile days ending the day after ovulation. " +
			"Ovulation signs include clear stretchy discharge, a small basal temperature rise, and mild one-sided pelvic pain. " +
			"Tracking cycles helps locate your window whether you are trying to conceive or to avoid pregnancy.",
		quickActions: []string{"Ovulation tracking", "Fertility signs", "Conception tips", "Age and fertility"},
	},
	{
		name:     "mental-wellness",
		keywords: []string{"mood", "emotional", "anxiety", "depression", "pms"},
		response: "Mood and hormones are tightly linked: many people notice irritability or low mood in the late luteal phase. " +
			"Regular sleep, movement, and logging mood against cycle days make the pattern visible and easier to manage. " +
			"If low mood interferes with daily life for most of the month, reach out to a mental-health professional.",
		quickActions: []string{"Mood tracking", "Stress management", "Hormonal effects", "Support resources"},
	},
}

var generalChatReply = ChatReply{
	Content: "I can help with questions about cycles, periods, fertility, and general wellness. " +
		"Ask about a specific symptom or concern, and keep logging your days so the answers can point at your own patterns.",
	Category:     "general-health",
	QuickActions: []string{"Ask about symptoms", "Cycle questions", "Health tracking", "Preventive care"},
}

// RespondToMessage routes a message to the first matching category.
func RespondToMessage(message string) ChatReply {
	lowered := strings.ToLower(message)
	for _, category := range chatCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lowered, keyword) {
				return ChatReply{
					Content:      category.response,
					Category:     category.name,
					QuickActions: category.quickActions,
				}
			}
		}
	}
	return generalChatReply
}

// Send stores the user message, answers it, stores the answer, and prunes
// history beyond the cap.
func (service *ChatService) Send(content string) (models.ChatMessage, error) {
	if _, err := service.messages.Append(models.ChatMessage{
		Role:    models.ChatRoleUser,
		Content: content,
	}); err != nil {
		return models.ChatMessage{}, err
	}

	reply := RespondToMessage(content)
	stored, err := service.messages.Append(models.ChatMessage{
		Role:         models.ChatRoleAssistant,
		Content:      reply.Content,
		Category:     reply.Category,
		QuickActions: reply.QuickActions,
	})
	if err != nil {
		return models.ChatMessage{}, err
	}

	if err := service.messages.TrimToNewest(models.ChatHistoryLimit); err != nil {
		return models.ChatMessage{}, err
	}
	return stored, nil
}

func (service *ChatService) History() ([]models.ChatMessage, error) {
	return service.messages.ListRecent(models.ChatHistoryLimit)
}
