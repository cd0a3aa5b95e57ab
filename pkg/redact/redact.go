// redact маскирует чувствительные данные для логов. Токен учётной записи
// comment API является одновременно её идентификатором и секретом.
package redact

// visible — сколько первых рун токена остаётся в логе.
const visible = 4

// Account маскирует токен учётной записи.
//
// Правила:
//   - пустая строка возвращается как есть (анонимный вызов);
//   - токен длиной ≤ 2*visible рун заменяется на "***" целиком;
//   - иначе остаются первые visible рун + "***".
//
// Примеры:
//
//	""                 -> ""
//	"acc-1"            -> "***"
//	"acc-5f2b9c1d44aa" -> "acc-***"
func Account(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	if len(r) <= 2*visible {
		return "***"
	}

	return string(r[:visible]) + "***"
}

// Token возвращает литерал-заглушку для токена в логах.
func Token() string { return "[REDACTED_TOKEN]" }
