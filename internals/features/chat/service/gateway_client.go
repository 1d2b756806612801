package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"fizika_backend/internals/configs"
	"fizika_backend/internals/features/chat/dto"
)

// Advisory errors surfaced to the client before any stream bytes are sent.
var (
	ErrRateLimited      = errors.New("تم تجاوز الحد المسموح من الطلبات. يرجى المحاولة لاحقاً.")
	ErrCreditsExhausted = errors.New("يرجى إعادة شحن الرصيد للاستمرار في استخدام المساعد الذكي.")
	ErrGatewayFailure   = errors.New("حدث خطأ في الاتصال بالذكاء الاصطناعي")
)

const systemPrompt = `أنت مساعد ذكي متخصص في الفيزياء للطلاب الجزائريين. أنت تعمل لصالح الأستاذ هزيل رفيق.

مهامك:
1. الإجابة على أسئلة الفيزياء بشكل واضح ومفصل
2. شرح المفاهيم الفيزيائية بطريقة مبسطة
3. حل المسائل خطوة بخطوة
4. تقديم أمثلة تطبيقية من الحياة اليومية
5. مساعدة طلاب السنة الثانية ثانوي والبكالوريا

قواعد:
- استخدم اللغة العربية دائماً
- كن صبوراً ومشجعاً
- قدم الإجابات بتنسيق واضح مع استخدام العناوين والنقاط
- إذا كان السؤال خارج نطاق الفيزياء، وجه الطالب بلطف للسؤال عن الفيزياء
- استخدم الرموز الرياضية والفيزيائية عند الحاجة`

// GatewayClient calls the OpenAI-compatible chat-completions endpoint with
// stream mode on.
type GatewayClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewGatewayClient() *GatewayClient {
	return &GatewayClient{
		// no overall timeout: the body is a long-lived stream
		httpClient: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
		baseURL: configs.AIGatewayURL,
		apiKey:  configs.AIGatewayKey,
		model:   configs.AIModel,
	}
}

type gatewayRequest struct {
	Model    string      `json:"model"`
	Messages []ChatEntry `json:"messages"`
	Stream   bool        `json:"stream"`
}

// Stream opens the completion stream for the given conversation. The system
// prompt is always prepended. The caller owns the returned body.
func (g *GatewayClient) Stream(ctx context.Context, messages []dto.ChatMessage) (io.ReadCloser, error) {
	if g.apiKey == "" {
		return nil, errors.New("AI gateway key is not configured")
	}

	payload := gatewayRequest{
		Model:    g.model,
		Messages: make([]ChatEntry, 0, len(messages)+1),
		Stream:   true,
	}
	payload.Messages = append(payload.Messages, ChatEntry{Role: "system", Content: systemPrompt})
	for _, m := range messages {
		payload.Messages = append(payload.Messages, ChatEntry{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return nil, ErrRateLimited
		case http.StatusPaymentRequired:
			return nil, ErrCreditsExhausted
		default:
			return nil, fmt.Errorf("%w (status %d: %s)", ErrGatewayFailure, resp.StatusCode, string(errBody))
		}
	}
	return resp.Body, nil
}
