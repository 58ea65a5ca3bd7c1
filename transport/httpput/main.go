/*
Package httpput は、 HTTP PUT を使用したトランスポートを提供するパッケージです。

フレームはHTTP PUTリクエストのボディとして運ばれます。送信フレームはプロキシの
メッセージエンドポイントへのPUTで届け、受信フレームはローカルに起動したHTTP
リスナーへプロキシがPUTすることで届きます。
*/
package httpput

/*
Name は、本トランスポートの名称です。
*/
const Name = "http"

const (
	// ContentTypeは、フレームを運ぶPUTリクエストのContent-Typeです。
	ContentType = "application/x-wfproxy"

	// DefaultMessagePathは、フレームを受け渡すエンドポイントのパスです。
	DefaultMessagePath = "/message"

	// DefaultEchoPathは、フレーミング確認用エンドポイントのパスです。
	DefaultEchoPath = "/echo"
)
