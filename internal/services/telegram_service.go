package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sentag/internal/models"
)

var ErrTelegramNotConfigured = errors.New("telegram credentials not configured")

type TelegramService interface {
	SendWeeklyStats(stats *models.WeeklyStats) error
}

type telegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) TelegramService {
	s := &telegramService{chatID: chatID}
	if botToken == "" || chatID == 0 {
		log.Printf("[tg] credentials empty, notifier disabled")
		return s
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg] bot init failed: %v", err)
		return s
	}
	s.bot = bot
	return s
}

func (s *telegramService) SendWeeklyStats(stats *models.WeeklyStats) error {
	if s.bot == nil || s.chatID == 0 {
		return ErrTelegramNotConfigured
	}

	msg := tgbotapi.NewMessage(s.chatID, formatWeeklyStats(stats))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}

// formatWeeklyStats — собирает отчет в том же виде, в каком его привыкли
// читать в чате: заявки, конверсия, среднее время шагов, клики.
func formatWeeklyStats(stats *models.WeeklyStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 <b>Статистика за неделю</b>\n")
	fmt.Fprintf(&b, "📅 %s - %s\n\n", stats.From.Format("02.01.2006"), stats.To.Format("02.01.2006"))

	fmt.Fprintf(&b, "<b>📋 Заявки:</b>\n")
	fmt.Fprintf(&b, "• Новых заявок: %d\n", stats.NewRequests)
	fmt.Fprintf(&b, "• Шаг 1 заполнен: %d\n", stats.Step1Count)
	fmt.Fprintf(&b, "• Шаг 2 завершён: %d\n", stats.Step2Count)
	if stats.Step1Count > 0 {
		rate := float64(stats.Step2Count) / float64(stats.Step1Count) * 100
		fmt.Fprintf(&b, "• Конверсия: %.1f%%\n", rate)
	}

	fmt.Fprintf(&b, "\n<b>⏱ Среднее время заполнения:</b>\n")
	fmt.Fprintf(&b, "• Шаг 1: %s\n", formatDuration(stats.AvgStep1Seconds))
	fmt.Fprintf(&b, "• Шаг 2: %s\n", formatDuration(stats.AvgStep2Seconds))

	total := 0
	for _, c := range stats.Clicks {
		total += c.TotalClicks
	}
	fmt.Fprintf(&b, "\n<b>🖱 Активность (всего %d кликов):</b>\n", total)
	if len(stats.Clicks) == 0 {
		b.WriteString("\nКликов пока не было")
	} else {
		for _, c := range stats.Clicks {
			fmt.Fprintf(&b, "\n• %s (%s): %d", c.ButtonName, c.ButtonLocation, c.TotalClicks)
		}
	}

	return b.String()
}

func formatDuration(seconds int) string {
	if seconds == 0 {
		return "н/д"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
