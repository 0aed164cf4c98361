package builtin

import (
	"fmt"
	"simplesh/internal/status"
)

const sheepArt = "\n" +
	"                                          ,ooooooooooo,              \n" +
	"                                       ,;OOOOOOOOOOOOOOo,            \n" +
	"                                    ,ooOOOOOOOOOOOOOOOOOo;,,,,       \n" +
	"                                ,ooooOOOOOOOOOOOOOOOOOOOOooo(@`,     \n" +
	"                     _  __   __;oooooo OOOOOOOOOOO; ;@@@@@@@o;@@`,   \n" +
	"            _______/@@@@@@@@@)ooOOOOOO) oOOOOOOOOOo; ;o@@@@@o;@@@:   \n" +
	"           /######)@@@@@@@@@@( _______ ( oOOOOOOOOOOo o@@@@@@`@@@`;  \n" +
	"          <######)@@@@@@@@@@@@(######/  `,;;;  oOOOOOo @@@@@@o, @@;  \n" +
	"               ` @@@@@@@@@@@@(######/ oO (@@@@  oOOOOO;@@@@@@@,  @`, \n" +
	"                ))@@@@@@@@@@(       oOOOo@@@@@@: ;;oo,`o@@@@@;   (@) \n" +
	"                )  `@@@@@@@( (  ooOOOOOoo:@@@@@: ,' /###o@@@@;       \n" +
	"                ( (0)     (0) ) ooooooo /@@@@@/,`  :####o@@@@;       \n" +
	"                 )           ( `'`'`'`'/@@@@@/     /###/:@@@@;       \n" +
	"                  `,       ,'     /###/@@@@@/     :###; :@@@@@;      \n" +
	"                     _`_'_/      /###/@@@@/       :###; :@@@@@;      \n" +
	"                     ~~~~~      ;###;@@@@/        :##;  `:@@@@;      \n" +
	"                                ;###;@@@@;       /  /    :@@@;       \n" +
	"                               /~~~~;@@@@;      `-^-'    /   /       \n" +
	"                               `-^--;@@@@/               `-^--'      \n" +
	"                                    :~~~~:                           \n" +
	"                                     /__/                            \n"

func sheep(cmd *Cmd) status.Status {
	fmt.Fprint(cmd.Stdout, sheepArt+"\n")
	return status.Continue
}
