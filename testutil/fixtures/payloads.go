// =============================================================================
// 📦 测试数据工厂 - FusionBrain 响应样例
// =============================================================================
// 以解码后的 JSON 形式（map / slice）提供响应体，测试可直接编码发送，
// 也可在发送前修改个别字段。
// =============================================================================
package fixtures

import "encoding/base64"

// =============================================================================
// 🖼️ 图片数据
// =============================================================================

var (
	// PNG 是足以被内容嗅探识别为 image/png 的最小数据
	PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	// JPEG 是足以被内容嗅探识别为 image/jpeg 的最小数据
	JPEG = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
)

// Base64 编码图片数据，与服务端返回格式一致
func Base64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// =============================================================================
// 🎯 任务快照
// =============================================================================

// Task 返回只含必填字段的任务快照
func Task(id, status string) map[string]any {
	return map[string]any{"uuid": id, "status": status}
}

// DoneTask 返回成功完成的任务快照，images 为原始图片数据
func DoneTask(id string, images ...[]byte) map[string]any {
	if len(images) == 0 {
		images = [][]byte{PNG}
	}
	encoded := make([]string, 0, len(images))
	for _, img := range images {
		encoded = append(encoded, Base64(img))
	}
	t := Task(id, "DONE")
	t["images"] = encoded
	t["censored"] = false
	t["generationTime"] = 11.5
	return t
}

// CensoredTask 返回被内容审核拦截的任务快照
func CensoredTask(id string) map[string]any {
	t := DoneTask(id)
	t["censored"] = true
	return t
}

// FailedTask 返回失败的任务快照
func FailedTask(id, description string) map[string]any {
	t := Task(id, "FAIL")
	t["errorDescription"] = description
	return t
}

// =============================================================================
// 📚 目录
// =============================================================================

// Models 返回模型目录
func Models() []map[string]any {
	return []map[string]any{
		{"id": 4, "name": "Kandinsky", "version": 3.1, "type": "TEXT2IMAGE"},
	}
}

// Styles 返回风格目录
func Styles() []map[string]any {
	return []map[string]any{
		{"name": "ANIME", "title": "Аниме", "titleEn": "Anime", "image": "https://cdn.example.test/anime.jpg"},
		{"name": "DEFAULT", "title": "Свой стиль", "titleEn": "No style", "image": "https://cdn.example.test/default.jpg"},
	}
}
